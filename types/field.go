package types

// Field describes one parameter or return value of a method.
type Field struct {
	Type     Type
	Desc     string
	Optional bool
	Default  interface{} // shown as `(default: ...)` when set
	Format   string      // name of the client side formatter, informational
	Example  interface{} // nil when the field has no example, use Null for null
	Details  Details     // only for Object fields
}

// Details maps member names of an object field to their descriptions.
type Details map[string]*Field

// Text returns a field that is described by text only and carries no type.
func Text(desc string) *Field {
	return &Field{Desc: desc}
}

// TextOnly reports whether the field is described by text alone.
func (f *Field) TextOnly() bool {
	return f.Type == 0
}

// HasExample reports whether f carries a literal example or describes an
// object whose members all have examples, recursively.
func (f *Field) HasExample() bool {
	if f == nil {
		return false
	}
	if f.Example != nil {
		return true
	}
	if f.Details == nil {
		return false
	}
	for _, d := range f.Details {
		if !d.HasExample() {
			return false
		}
	}
	return true
}

// WithExample returns a shallow copy of f carrying example.
func (f *Field) WithExample(example interface{}) *Field {
	c := *f
	c.Example = example
	return &c
}

// AsOptional returns a shallow copy of f marked optional.
func (f *Field) AsOptional() *Field {
	c := *f
	c.Optional = true
	return &c
}
