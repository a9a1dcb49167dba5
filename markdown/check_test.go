package markdown_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/markdown"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	schema := types.Schema{
		"eth": {Methods: map[string]*types.Method{
			"ok":      {Returns: &types.Field{Type: types.Boolean, Example: true}},
			"partial": {Params: []*types.Field{{Type: types.Address}}, Returns: &types.Field{Type: types.Boolean, Example: true}},
			"bare":    {Params: []*types.Field{{Type: types.Address}}, Returns: &types.Field{Type: types.Boolean}},
			"old":     {Deprecated: true, Returns: &types.Field{Type: types.Boolean}},
			"sub":     {Subdoc: "extra", Returns: &types.Field{Type: types.Boolean, Example: true}},
		}},
	}
	reports, err := markdown.Check(schema, nil, log.NewNopLogger())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, markdown.Report{Group: "eth", Methods: 4, Documented: 3, Skipped: 1, Info: 1, Warn: 1, Error: 1}, reports[0])
	assert.Equal(t, markdown.Report{Group: "eth_extra", Methods: 1, Documented: 1}, reports[1])
}

func TestCheckInvalid(t *testing.T) {
	schema := types.Schema{
		"eth": {Methods: map[string]*types.Method{
			"broken": {Returns: &types.Field{Type: types.Array, Details: types.Details{"x": {Type: types.String}}}},
		}},
	}
	reports, err := markdown.Check(schema, nil, log.NewNopLogger())
	assert.ErrorIs(t, err, types.ErrDetailsOnScalar)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Methods)
}
