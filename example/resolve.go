// Package example synthesizes worked request and response examples from
// field descriptions.
package example

import (
	"github.com/DOIDFoundation/rpcdoc/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind tells how an example is obtained for a field.
type Kind uint8

const (
	// Unresolved fields have no example and no complete details.
	Unresolved Kind = iota
	// Literal fields carry an example verbatim.
	Literal
	// Composite fields build their example from their details.
	Composite
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Composite:
		return "composite"
	default:
		return "unresolved"
	}
}

// Classify returns the kind of example f resolves to.
func Classify(f *types.Field) Kind {
	switch {
	case f == nil:
		return Unresolved
	case f.Example != nil:
		return Literal
	case f.HasExample():
		return Composite
	default:
		return Unresolved
	}
}

// HasExample reports whether f resolves to an example.
func HasExample(f *types.Field) bool {
	return Classify(f) != Unresolved
}

// Resolve returns the example for f, ok is false when f is unresolved.
func Resolve(f *types.Field) (value interface{}, ok bool) {
	switch Classify(f) {
	case Literal:
		return f.Example, true
	case Composite:
		obj := make(map[string]interface{}, len(f.Details))
		keys := maps.Keys(f.Details)
		slices.Sort(keys)
		for _, key := range keys {
			v, _ := Resolve(f.Details[key])
			obj[key] = v
		}
		return obj, true
	default:
		return nil, false
	}
}

// ResolveParams returns the example values of params in order, ok is false
// unless every param resolves, optional ones included. The result is never
// nil when ok, an empty list resolves to an empty slice.
func ResolveParams(params []*types.Field) (values []interface{}, ok bool) {
	values = make([]interface{}, 0, len(params))
	for _, p := range params {
		v, ok := Resolve(p)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}
