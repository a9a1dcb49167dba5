package example

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/DOIDFoundation/rpcdoc/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const indentUnit = "  "

// Stringify lays out an example for reading: objects and arrays span one
// line per member, placeholders print unquoted and commented members get a
// trailing `// comment`.
func Stringify(v interface{}) string {
	return stringify(v, "")
}

func stringify(v interface{}, dent string) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case *types.Dummy:
		return val.String()
	case types.NullValue:
		return "null"
	case types.Commented:
		return stringify(val.Value, dent)
	}

	if elems, ok := asSlice(v); ok {
		return stringifyArray(elems, dent)
	}
	if obj, ok := asObject(v); ok {
		return stringifyObject(obj, dent)
	}
	return scalarJSON(v)
}

func stringifyArray(elems []interface{}, dent string) string {
	indent := dent + indentUnit

	// A single line for arrays of placeholders only, empty arrays included.
	if allDummies(elems) {
		texts := make([]string, len(elems))
		for i, e := range elems {
			texts[i] = e.(*types.Dummy).String()
		}
		return "[" + strings.Join(texts, ", ") + "]"
	}

	// Arrays of just one object or string stay on the opening line.
	if len(elems) == 1 {
		switch elems[0].(type) {
		case string:
			return "[" + stringify(elems[0], dent) + "]"
		default:
			if _, ok := asObject(elems[0]); ok {
				return "[" + stringify(elems[0], dent) + "]"
			}
		}
	}

	lines := make([]string, len(elems))
	last := len(elems) - 1
	for i, e := range elems {
		lines[i] = stringify(e, indent) + comma(i, last) + comment(e)
	}
	return "[\n" + indent + strings.Join(lines, "\n"+indent) + "\n" + dent + "]"
}

func stringifyObject(obj map[string]interface{}, dent string) string {
	if len(obj) == 0 {
		return "{}"
	}
	indent := dent + indentUnit

	keys := maps.Keys(obj)
	slices.Sort(keys)

	lines := make([]string, len(keys))
	last := len(keys) - 1
	for i, k := range keys {
		v := obj[k]
		lines[i] = scalarJSON(k) + ": " + stringify(v, indent) + comma(i, last) + comment(v)
	}
	return "{\n" + indent + strings.Join(lines, "\n"+indent) + "\n" + dent + "}"
}

func comma(i, last int) string {
	if i != last {
		return ","
	}
	return ""
}

func comment(v interface{}) string {
	if c, ok := v.(types.Commented); ok && c.Comment != "" {
		return " // " + c.Comment
	}
	return ""
}

func allDummies(elems []interface{}) bool {
	for _, e := range elems {
		if !types.IsDummy(e) {
			return false
		}
	}
	return true
}

// asSlice returns the elements of any slice or array except byte slices.
func asSlice(v interface{}) ([]interface{}, bool) {
	if s, ok := v.([]interface{}); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		ret := make([]interface{}, rv.Len())
		for i := range ret {
			ret[i] = rv.Index(i).Interface()
		}
		return ret, true
	}
	return nil, false
}

// asObject returns the members of any map keyed by strings.
func asObject(v interface{}) (map[string]interface{}, bool) {
	if m, ok := v.(map[string]interface{}); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	ret := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		ret[iter.Key().String()] = iter.Value().Interface()
	}
	return ret, true
}

func scalarJSON(v interface{}) string {
	s, err := marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// marshal encodes v as compact JSON without escaping HTML characters.
func marshal(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// CompactJSON encodes v on a single line with every placeholder unquoted.
func CompactJSON(v interface{}) (string, error) {
	s, err := marshal(v)
	if err != nil {
		return "", err
	}
	dummies := map[string]struct{}{}
	collectDummies(reflect.ValueOf(v), dummies)
	for text := range dummies {
		quoted, err := marshal(text)
		if err != nil {
			return "", err
		}
		s = strings.ReplaceAll(s, quoted, text)
	}
	return s, nil
}

var dummyT = reflect.TypeOf((*types.Dummy)(nil))

func collectDummies(rv reflect.Value, set map[string]struct{}) {
	if !rv.IsValid() {
		return
	}
	if rv.Type() == dummyT {
		if !rv.IsNil() {
			set[rv.Interface().(*types.Dummy).String()] = struct{}{}
		}
		return
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !rv.IsNil() {
			collectDummies(rv.Elem(), set)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			collectDummies(rv.Index(i), set)
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			collectDummies(iter.Value(), set)
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if rv.Type().Field(i).IsExported() {
				collectDummies(rv.Field(i), set)
			}
		}
	}
}
