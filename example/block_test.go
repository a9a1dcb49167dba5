package example_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/example"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockBothSides(t *testing.T) {
	d := diag.NewReporter(log.NewNopLogger())
	m := &types.Method{
		Returns: &types.Field{Type: types.Boolean, Example: true},
	}
	out := example.Block("web3_foo", m, "", d)
	want := "\n\n#### Example\n\n" +
		"Request\n```bash\ncurl --data '{\"jsonrpc\":\"2.0\",\"method\":\"web3_foo\",\"params\":[],\"id\":1}' -H \"Content-Type: application/json\" -X POST localhost:8545\n```" +
		"\n\n" +
		"Response\n```js\n{\n  \"id\": 1,\n  \"jsonrpc\": \"2.0\",\n  \"result\": true\n}\n```"
	assert.Equal(t, want, out)
	assert.Empty(t, d.Entries())
}

func TestBlockMissingRequest(t *testing.T) {
	d := diag.NewReporter(log.NewNopLogger())
	m := &types.Method{
		Params:  []*types.Field{{Type: types.String, Desc: "no example"}},
		Returns: &types.Field{Type: types.Boolean, Example: true},
	}
	out := example.Block("web3_bar", m, "", d)
	assert.NotContains(t, out, "Request")
	assert.Contains(t, out, "Response")

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, diag.Warn, entries[0].Severity)
	assert.Equal(t, "web3_bar has a response example but not a request example", entries[0].Message)
}

func TestBlockOptionalParamWithoutExample(t *testing.T) {
	d := diag.NewReporter(log.NewNopLogger())
	m := &types.Method{
		Params:  []*types.Field{{Type: types.String, Optional: true}},
		Returns: &types.Field{Type: types.Boolean, Example: true},
	}
	out := example.Block("web3_baz", m, "", d)
	assert.NotContains(t, out, "Request")
	assert.Contains(t, out, "Response")

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, diag.Warn, entries[0].Severity)
	assert.Equal(t, "web3_baz has a response example but not a request example", entries[0].Message)
}

func TestBlockMissingResponse(t *testing.T) {
	d := diag.NewReporter(log.NewNopLogger())
	m := &types.Method{
		Subdoc:  "accounts",
		Returns: &types.Field{Type: types.Object},
	}
	out := example.Block("parity_x", m, "127.0.0.1:8546", d)
	assert.Contains(t, out, "-X POST 127.0.0.1:8546")
	assert.NotContains(t, out, "Response")

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, diag.Warn, entries[0].Severity)
	assert.Equal(t, "parity_x has a request example but not a response example (accounts)", entries[0].Message)
}

func TestBlockTextOnlyResponse(t *testing.T) {
	d := diag.NewReporter(log.NewNopLogger())
	m := &types.Method{Returns: types.Text("see the RPC reference")}
	out := example.Block("eth_x", m, "", d)
	assert.Contains(t, out, "Request")

	entries := d.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, diag.Info, entries[0].Severity)
}

func TestBlockNoExamples(t *testing.T) {
	d := diag.NewReporter(log.NewNopLogger())
	m := &types.Method{
		Params:  []*types.Field{{Type: types.String}},
		Returns: &types.Field{Type: types.String},
	}
	assert.Equal(t, "", example.Block("eth_none", m, "", d))
	assert.Equal(t, 1, d.Count(diag.Error))
	assert.Equal(t, "eth_none has no examples", d.Entries()[0].Message)
}

func TestBlockDeprecated(t *testing.T) {
	d := diag.NewReporter(log.NewNopLogger())
	m := &types.Method{Deprecated: true, Returns: &types.Field{Type: types.String}}
	assert.Equal(t, "", example.Block("eth_old", m, "", d))
	assert.Empty(t, d.Entries())
}
