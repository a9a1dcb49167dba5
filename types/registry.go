package types

// Registry maps value types to the names shown in the reference.
type Registry struct {
	overrides map[Type]string
}

// NewRegistry returns a registry with the given display name overrides.
func NewRegistry(overrides map[Type]string) *Registry {
	r := &Registry{overrides: make(map[Type]string, len(overrides))}
	for t, name := range overrides {
		r.overrides[t] = name
	}
	return r
}

// DefaultRegistry shows block numbers as either a quantity or a block tag.
func DefaultRegistry() *Registry {
	return NewRegistry(map[Type]string{
		BlockNumber: "Quantity|Tag",
	})
}

// With returns a copy of r with t displayed as name.
func (r *Registry) With(t Type, name string) *Registry {
	c := NewRegistry(r.overrides)
	c.overrides[t] = name
	return c
}

// DisplayName returns the override for t, falling back to the type name.
func (r *Registry) DisplayName(t Type) string {
	if r != nil {
		if name, ok := r.overrides[t]; ok {
			return name
		}
	}
	return t.String()
}
