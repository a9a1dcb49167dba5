package types_test

import (
	"encoding/json"
	"testing"

	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeNames(t *testing.T) {
	for _, typ := range []types.Type{
		types.Address, types.Hash, types.Data, types.Quantity, types.BlockNumber,
		types.String, types.Boolean, types.Number, types.Object, types.Array,
	} {
		assert.True(t, typ.Valid())
		parsed, err := types.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	_, err := types.ParseType("Tag")
	assert.ErrorIs(t, err, types.ErrUnknownType)
	assert.False(t, types.Type(0).Valid())
	assert.Equal(t, "", types.Type(0).String())
}

func TestTypeJSON(t *testing.T) {
	b, err := json.Marshal(types.Quantity)
	require.NoError(t, err)
	assert.Equal(t, `"Quantity"`, string(b))

	var typ types.Type
	require.NoError(t, json.Unmarshal([]byte(`"Hash"`), &typ))
	assert.Equal(t, types.Hash, typ)
	assert.Error(t, json.Unmarshal([]byte(`3`), &typ))
	assert.Error(t, json.Unmarshal([]byte(`"Tag"`), &typ))
}

func TestRegistry(t *testing.T) {
	r := types.DefaultRegistry()
	assert.Equal(t, "Quantity|Tag", r.DisplayName(types.BlockNumber))
	assert.Equal(t, "Address", r.DisplayName(types.Address))

	c := r.With(types.Data, "Bytes")
	assert.Equal(t, "Bytes", c.DisplayName(types.Data))
	assert.Equal(t, "Quantity|Tag", c.DisplayName(types.BlockNumber))
	assert.Equal(t, "Data", r.DisplayName(types.Data), "With must not modify the receiver")

	var nilRegistry *types.Registry
	assert.Equal(t, "BlockNumber", nilRegistry.DisplayName(types.BlockNumber))
}

func TestValues(t *testing.T) {
	b, err := json.Marshal([]interface{}{types.Elided, types.Null, types.WithComment("<x>", "c")})
	require.NoError(t, err)
	assert.Equal(t, `["{ ... }",null,"<x>"]`, string(b))

	assert.True(t, types.IsDummy(types.Elided))
	assert.False(t, types.IsDummy("{ ... }"))
	assert.Equal(t, "v", types.Unwrap(types.WithComment(types.WithComment("v", "a"), "b")))
}

func TestMethodFlags(t *testing.T) {
	m := &types.Method{}
	assert.True(t, m.Documented())
	assert.Equal(t, "", m.SkipReason())

	m.Deprecated = true
	assert.False(t, m.Documented())
	assert.Equal(t, "Deprecated", m.SkipReason())

	m.Nodoc = "Not present in the client"
	assert.Equal(t, "Not present in the client", m.SkipReason())
}

func TestSchemaClone(t *testing.T) {
	m := &types.Method{Returns: types.Text("x")}
	s := types.Schema{"eth": {Preamble: "p", Methods: map[string]*types.Method{"a": m}}}
	c := s.Clone()
	delete(c["eth"].Methods, "a")
	assert.Contains(t, s["eth"].Methods, "a")
	assert.Equal(t, "p", c["eth"].Preamble)
	assert.Equal(t, []string{"eth"}, c.Names())
}
