package markdown_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/markdown"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	ret := &types.Field{Type: types.Boolean, Example: true}
	moved := &types.Method{Subdoc: "accounts", Returns: ret}
	schema := types.Schema{
		"parity": {Preamble: "p", Methods: map[string]*types.Method{
			"allAccountsInfo": moved,
			"mode":            {Returns: ret},
			"setMode":         {Subdoc: "set", Returns: ret},
		}},
		"eth": {Methods: map[string]*types.Method{"accounts": {Returns: ret}}},
	}
	out := markdown.Partition(schema)

	assert.Equal(t, []string{"eth", "parity", "parity_accounts", "parity_set"}, out.Names())
	assert.Equal(t, "p", out["parity"].Preamble)
	assert.Equal(t, []string{"mode"}, markdown.SortedMethods(out["parity"]))
	require.Contains(t, out["parity_accounts"].Methods, "allAccountsInfo")
	assert.Same(t, moved, out["parity_accounts"].Methods["allAccountsInfo"])
	assert.Contains(t, out["parity_set"].Methods, "setMode")

	// the input is left as it was
	assert.Equal(t, []string{"eth", "parity"}, schema.Names())
	assert.Len(t, schema["parity"].Methods, 3)
}

func TestPartitionIntoExistingGroup(t *testing.T) {
	ret := &types.Field{Type: types.Boolean, Example: true}
	schema := types.Schema{
		"parity": {Methods: map[string]*types.Method{
			"setAuthor": {Subdoc: "set", Returns: ret},
		}},
		"parity_set": {Preamble: "Set things.", Methods: map[string]*types.Method{
			"setMode": {Subdoc: "set", Returns: ret},
		}},
	}
	out := markdown.Partition(schema)
	assert.Equal(t, []string{"parity", "parity_set"}, out.Names())
	assert.Empty(t, out["parity"].Methods)
	assert.Equal(t, []string{"setAuthor", "setMode"}, markdown.SortedMethods(out["parity_set"]))
	assert.Equal(t, "Set things.", out["parity_set"].Preamble)
	assert.Len(t, schema["parity_set"].Methods, 1)
}

func TestPartitionRendersParentPrefix(t *testing.T) {
	r, _ := newRenderer()
	schema := types.Schema{
		"parity": {Methods: map[string]*types.Method{
			"newAccountFromPhrase": {Subdoc: "accounts", Returns: &types.Field{Type: types.Address, Example: "0x407d73d8a49eeb85d32cf465507dd71d507100c1"}},
		}},
	}
	out := markdown.Partition(schema)
	md := r.RenderGroup("parity_accounts", out["parity_accounts"])
	assert.Contains(t, md, "# The `parity_accounts` Module")
	assert.Contains(t, md, "### parity_newAccountFromPhrase\n")
	assert.Contains(t, md, "- [parity_newAccountFromPhrase](#parity_newaccountfromphrase)")
	assert.NotContains(t, md, "parity_accounts_newAccountFromPhrase")
}
