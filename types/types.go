package types

import (
	"encoding/json"
	"fmt"
	"reflect"

	bidmap "github.com/graytonio/go-bidirectional-map"
)

// Type tags the semantic value type of a parameter or return field.
//
// The zero value is not a valid tag, a field without a tag is described by
// text only.
type Type uint8

// Value types, append only.
const (
	Address Type = iota + 1
	Hash
	Data
	Quantity
	BlockNumber
	String
	Boolean
	Number
	Object
	Array
)

// Type names, used as default display names and for json/config lookups.
var typeStrings = bidmap.NewMap(map[Type]string{
	Address:     "Address",
	Hash:        "Hash",
	Data:        "Data",
	Quantity:    "Quantity",
	BlockNumber: "BlockNumber",
	String:      "String",
	Boolean:     "Boolean",
	Number:      "Number",
	Object:      "Object",
	Array:       "Array",
})

// ParseType returns the tag registered under name.
func ParseType(name string) (Type, error) {
	t, ok := typeStrings.GetS(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// Valid reports whether t is one of the registered tags.
func (t Type) Valid() bool {
	_, ok := typeStrings.GetP(t)
	return ok
}

// String returns the type name.
func (t Type) String() string {
	val, _ := typeStrings.GetP(t)
	return val
}

// ----------------------------------------------------------------
// Json marshalling

var typeT = reflect.TypeOf((*Type)(nil))

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	val, ok := typeStrings.GetP(t)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	return []byte(val), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Type) UnmarshalJSON(input []byte) error {
	if !isString(input) {
		return &json.UnmarshalTypeError{Value: "non-string", Type: typeT}
	}
	if err := t.UnmarshalText(input[1 : len(input)-1]); err != nil {
		return &json.UnmarshalTypeError{Value: err.Error(), Type: typeT}
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Type) UnmarshalText(input []byte) error {
	val, err := ParseType(string(input))
	if err != nil {
		return err
	}
	*t = val
	return nil
}

func isString(input []byte) bool {
	return len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"'
}
