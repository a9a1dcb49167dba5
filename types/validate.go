package types

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Validate checks the shape of every method in the schema and returns all
// violations found, nil when there are none.
func (s Schema) Validate() error {
	var result *multierror.Error
	for _, group := range s.Names() {
		if group == "" {
			result = multierror.Append(result, ErrEmptyName)
		}
		g := s[group]
		if g == nil {
			continue
		}
		names := maps.Keys(g.Methods)
		slices.Sort(names)
		for _, name := range names {
			if err := ValidateMethod(g.Methods[name]); err != nil {
				result = multierror.Append(result, fmt.Errorf("%s_%s: %w", group, name, err))
			}
			if name == "" {
				result = multierror.Append(result, fmt.Errorf("%s: %w", group, ErrEmptyName))
			}
		}
	}
	return result.ErrorOrNil()
}

// ValidateMethod checks the params and returns of m.
func ValidateMethod(m *Method) error {
	if m == nil {
		return ErrNilMethod
	}
	var result *multierror.Error
	for i, p := range m.Params {
		if err := validateField(fmt.Sprintf("params[%d]", i), p, false); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if m.Returns == nil {
		result = multierror.Append(result, ErrNilReturns)
	} else if err := validateField("returns", m.Returns, true); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func validateField(path string, f *Field, textAllowed bool) error {
	if f == nil {
		return fmt.Errorf("%s: %w", path, ErrNilField)
	}
	var result *multierror.Error
	switch {
	case f.TextOnly() && !textAllowed:
		result = multierror.Append(result, fmt.Errorf("%s: %w", path, ErrMissingType))
	case !f.TextOnly() && !f.Type.Valid():
		result = multierror.Append(result, fmt.Errorf("%s: %w: %d", path, ErrUnknownType, f.Type))
	}
	if f.Details == nil {
		return result.ErrorOrNil()
	}
	if f.Type != Object {
		result = multierror.Append(result, fmt.Errorf("%s: %w (%s)", path, ErrDetailsOnScalar, f.Type))
	}
	if f.Example != nil {
		// an example next to details is only allowed when the details could
		// have produced one themselves
		c := *f
		c.Example = nil
		if !c.HasExample() {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, ErrPartialDetails))
		}
	}
	keys := maps.Keys(f.Details)
	slices.Sort(keys)
	for _, key := range keys {
		if err := validateField(path+"."+key, f.Details[key], false); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
