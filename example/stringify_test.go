package example_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/example"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/stretchr/testify/assert"
)

func TestStringifyPlaceholders(t *testing.T) {
	assert.Equal(t, "[{ ... }, { ... }]", example.Stringify([]interface{}{types.Elided, types.Elided}))
	assert.Equal(t, "[{ ... }]", example.Stringify([]interface{}{types.Elided}))
	assert.Equal(t, "[]", example.Stringify([]interface{}{}))
	assert.Equal(t, "[]", example.Stringify([]string{}))
	assert.Equal(t, "{ ... }", example.Stringify(types.Elided))
}

func TestStringifySingleton(t *testing.T) {
	assert.Equal(t, `["0xabc"]`, example.Stringify([]interface{}{"0xabc"}))
	assert.Equal(t, `["a"]`, example.Stringify([]string{"a"}))
	assert.Equal(t, "[{\n  \"a\": 1\n}]", example.Stringify([]interface{}{map[string]interface{}{"a": 1}}))
	assert.Equal(t, "[\n  1\n]", example.Stringify([]interface{}{1}))
}

func TestStringifyMultiline(t *testing.T) {
	v := []interface{}{
		"0x1",
		types.WithComment("0x2", "second"),
		types.Elided,
	}
	assert.Equal(t, "[\n  \"0x1\",\n  \"0x2\", // second\n  { ... }\n]", example.Stringify(v))
}

func TestStringifyObject(t *testing.T) {
	v := map[string]interface{}{
		"b":     types.WithComment(true, "flag"),
		"a":     []interface{}{},
		"inner": map[string]interface{}{"x": types.Null},
		"empty": map[string]interface{}{},
	}
	want := "{\n" +
		"  \"a\": [],\n" +
		"  \"b\": true, // flag\n" +
		"  \"empty\": {},\n" +
		"  \"inner\": {\n" +
		"    \"x\": null\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, example.Stringify(v))
}

func TestStringifyScalars(t *testing.T) {
	assert.Equal(t, "null", example.Stringify(nil))
	assert.Equal(t, "null", example.Stringify(types.Null))
	assert.Equal(t, `"<a&b>"`, example.Stringify("<a&b>"))
	assert.Equal(t, "42", example.Stringify(42))
	assert.Equal(t, "false", example.Stringify(false))
}

func TestStringifyDeterministic(t *testing.T) {
	v := map[string]interface{}{"z": 1, "y": 2, "x": []interface{}{3, 4}}
	first := example.Stringify(v)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, example.Stringify(v))
	}
}
