package types_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOK(t *testing.T) {
	s := types.Schema{
		"eth": {Methods: map[string]*types.Method{
			"call": {
				Params: []*types.Field{
					{Type: types.Object, Details: types.Details{
						"to": {Type: types.Address},
					}},
					{Type: types.BlockNumber, Optional: true},
				},
				Returns: &types.Field{Type: types.Data},
			},
			"text": {Returns: types.Text("described elsewhere")},
		}},
	}
	assert.NoError(t, s.Validate())
}

func TestValidateViolations(t *testing.T) {
	s := types.Schema{
		"parity": {Methods: map[string]*types.Method{
			"detailsOnArray": {
				Returns: &types.Field{Type: types.Array, Details: types.Details{
					"name": {Type: types.String},
				}},
			},
			"noReturns": {},
			"nilParam":  {Params: []*types.Field{nil}, Returns: &types.Field{Type: types.Boolean}},
			"textParam": {Params: []*types.Field{types.Text("x")}, Returns: &types.Field{Type: types.Boolean}},
			"partial": {Returns: &types.Field{
				Type:    types.Object,
				Example: map[string]interface{}{"a": "x"},
				Details: types.Details{"a": {Type: types.String}},
			}},
			"unknown": {Returns: &types.Field{Type: types.Type(99)}},
		}},
	}
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDetailsOnScalar)
	assert.ErrorIs(t, err, types.ErrNilReturns)
	assert.ErrorIs(t, err, types.ErrNilField)
	assert.ErrorIs(t, err, types.ErrMissingType)
	assert.ErrorIs(t, err, types.ErrPartialDetails)
	assert.ErrorIs(t, err, types.ErrUnknownType)
	assert.Contains(t, err.Error(), "parity_detailsOnArray")
	assert.Contains(t, err.Error(), "returns: details on non-object field (Array)")
}

func TestValidateExampleWithCompleteDetails(t *testing.T) {
	m := &types.Method{Returns: &types.Field{
		Type:    types.Object,
		Example: map[string]interface{}{"a": "x"},
		Details: types.Details{"a": {Type: types.String, Example: "y"}},
	}}
	assert.NoError(t, types.ValidateMethod(m))
	assert.ErrorIs(t, types.ValidateMethod(nil), types.ErrNilMethod)
}
