package types

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Method describes one RPC method. Its name is the key it is stored under
// in a Group.
type Method struct {
	Desc       string
	Section    string // TOC section inside the module
	Subdoc     string // moves the method into the `{group}_{subdoc}` module
	Deprecated bool
	Nodoc      string // reason for leaving the method out of the reference
	Params     []*Field
	Returns    *Field
}

// Documented reports whether the method shows up in the reference.
func (m *Method) Documented() bool {
	return m.Nodoc == "" && !m.Deprecated
}

// SkipReason returns why the method is left out of the reference.
func (m *Method) SkipReason() string {
	if m.Nodoc != "" {
		return m.Nodoc
	}
	if m.Deprecated {
		return "Deprecated"
	}
	return ""
}

// Group is a module of methods, keyed by method name.
type Group struct {
	Preamble string
	Methods  map[string]*Method
}

// Schema maps module names to their groups.
type Schema map[string]*Group

// Names returns the group names in lexicographic order.
func (s Schema) Names() []string {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}

// Clone returns a copy of s that shares methods but not maps.
func (s Schema) Clone() Schema {
	c := make(Schema, len(s))
	for name, g := range s {
		if g == nil {
			c[name] = nil
			continue
		}
		c[name] = &Group{Preamble: g.Preamble, Methods: maps.Clone(g.Methods)}
	}
	return c
}
