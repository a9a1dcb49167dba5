package example

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrTypeMismatch = errors.New("example does not match type")

// Lint checks the literal examples of f and its details against their
// value types. path names f in the returned errors.
func Lint(path string, f *types.Field) []error {
	if f == nil {
		return nil
	}
	var errs []error
	if f.Example != nil && !f.TextOnly() {
		if err := CheckValue(f.Type, f.Example); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	keys := maps.Keys(f.Details)
	slices.Sort(keys)
	for _, key := range keys {
		errs = append(errs, Lint(path+"."+key, f.Details[key])...)
	}
	return errs
}

// CheckValue reports whether v is a valid JSON-RPC encoding of a value of
// type t. Placeholders and nulls are accepted for every type.
func CheckValue(t types.Type, v interface{}) error {
	v = types.Unwrap(v)
	switch v.(type) {
	case *types.Dummy, types.NullValue, nil:
		return nil
	}

	var err error
	switch t {
	case types.Address:
		err = checkString(v, func(s string) error {
			if !common.IsHexAddress(s) {
				return errors.New("invalid address")
			}
			return nil
		})
	case types.Hash:
		err = checkString(v, func(s string) error {
			b, err := hexutil.Decode(s)
			if err != nil {
				return err
			}
			if len(b) != common.HashLength {
				return fmt.Errorf("hash has %d bytes", len(b))
			}
			return nil
		})
	case types.Data:
		err = checkString(v, func(s string) error {
			_, err := hexutil.Decode(s)
			return err
		})
	case types.Quantity:
		if isNumber(v) {
			return nil
		}
		err = checkString(v, func(s string) error {
			_, err := hexutil.DecodeBig(s)
			return err
		})
	case types.BlockNumber:
		err = checkString(v, func(s string) error {
			var bn rpc.BlockNumber
			return bn.UnmarshalJSON([]byte(strconv.Quote(s)))
		})
	case types.String:
		err = checkString(v, func(string) error { return nil })
	case types.Boolean:
		if _, ok := v.(bool); !ok {
			err = fmt.Errorf("%T is not a boolean", v)
		}
	case types.Number:
		if !isNumber(v) {
			err = fmt.Errorf("%T is not a number", v)
		}
	case types.Object:
		if _, ok := asObject(v); !ok {
			err = fmt.Errorf("%T is not an object", v)
		}
	case types.Array:
		if _, ok := asSlice(v); !ok {
			err = fmt.Errorf("%T is not an array", v)
		}
	default:
		err = fmt.Errorf("%w: %d", types.ErrUnknownType, t)
	}
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrTypeMismatch, t, err)
	}
	return nil
}

func checkString(v interface{}, check func(string) error) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%T is not a string", v)
	}
	return check(s)
}

func isNumber(v interface{}) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
