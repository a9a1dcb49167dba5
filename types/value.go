package types

import (
	"bytes"
	"encoding/json"
)

// Dummy is a placeholder standing in for a value that is left out of an
// example.
type Dummy struct {
	text string
}

// Elided marks a repeated entry of an example that is not spelled out.
var Elided = NewDummy("{ ... }")

func NewDummy(text string) *Dummy {
	return &Dummy{text: text}
}

func (d *Dummy) String() string {
	return d.text
}

// MarshalJSON implements json.Marshaler, a dummy travels as its text.
func (d *Dummy) MarshalJSON() ([]byte, error) {
	return marshalNoEscape(d.text)
}

// IsDummy reports whether v is a placeholder.
func IsDummy(v interface{}) bool {
	_, ok := v.(*Dummy)
	return ok
}

// NullValue is an example that is literally null.
type NullValue struct{}

// Null is the null example. A nil Example means "no example".
var Null = NullValue{}

// MarshalJSON implements json.Marshaler.
func (NullValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Commented is an example value annotated with a comment, rendered after
// the value when it is an array element or an object member.
type Commented struct {
	Value   interface{}
	Comment string
}

// WithComment annotates v.
func WithComment(v interface{}, comment string) Commented {
	return Commented{Value: v, Comment: comment}
}

// MarshalJSON implements json.Marshaler, the comment is dropped.
func (c Commented) MarshalJSON() ([]byte, error) {
	return marshalNoEscape(c.Value)
}

// Unwrap strips any comment from v.
func Unwrap(v interface{}) interface{} {
	if c, ok := v.(Commented); ok {
		return Unwrap(c.Value)
	}
	return v
}

func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
