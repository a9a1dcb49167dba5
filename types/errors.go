package types

import "errors"

var (
	ErrUnknownType     = errors.New("unknown value type")
	ErrMissingType     = errors.New("field has no type")
	ErrDetailsOnScalar = errors.New("details on non-object field")
	ErrPartialDetails  = errors.New("example next to details without examples")
	ErrNilField        = errors.New("nil field")
	ErrNilReturns      = errors.New("method has no returns")
	ErrNilMethod       = errors.New("nil method")
	ErrEmptyName       = errors.New("empty name")
)
