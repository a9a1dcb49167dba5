package markdown_test

import (
	"path/filepath"
	"testing"

	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/markdown"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() types.Schema {
	ret := &types.Field{Type: types.Boolean, Example: true}
	return types.Schema{
		"web3": {Methods: map[string]*types.Method{
			"foo": {Params: []*types.Field{}, Returns: ret},
			"bar": {Params: []*types.Field{{Type: types.String, Desc: "no example"}}, Returns: ret},
		}},
		"parity": {Methods: map[string]*types.Method{
			"mode":        {Returns: &types.Field{Type: types.String, Example: "active"}},
			"killAccount": {Subdoc: "accounts", Params: []*types.Field{{Type: types.Address}}, Returns: &types.Field{Type: types.Boolean}},
			"hidden":      {Nodoc: "Not implemented", Returns: ret},
			"dappsPort":   {Deprecated: true, Returns: ret},
		}},
	}
}

func newGenerator(fs afero.Fs) (*markdown.Generator, *diag.Reporter) {
	d := diag.NewReporter(log.NewNopLogger())
	r := markdown.NewRenderer(types.DefaultRegistry(), d, "")
	return markdown.NewGenerator(fs, "docs", r, log.NewNopLogger()), d
}

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	g, d := newGenerator(fs)
	written, err := g.Generate(testSchema())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("docs", "parity.md"),
		filepath.Join("docs", "parity_accounts.md"),
		filepath.Join("docs", "web3.md"),
	}, written)

	isDir, err := afero.IsDir(fs, "docs")
	require.NoError(t, err)
	assert.True(t, isDir)

	parity, err := afero.ReadFile(fs, filepath.Join("docs", "parity.md"))
	require.NoError(t, err)
	assert.Contains(t, string(parity), "### parity_mode")
	assert.NotContains(t, string(parity), "hidden")
	assert.NotContains(t, string(parity), "dappsPort")
	assert.NotContains(t, string(parity), "killAccount")

	accounts, err := afero.ReadFile(fs, filepath.Join("docs", "parity_accounts.md"))
	require.NoError(t, err)
	assert.Contains(t, string(accounts), "### parity_killAccount")

	web3, err := afero.ReadFile(fs, filepath.Join("docs", "web3.md"))
	require.NoError(t, err)
	assert.Contains(t, string(web3), `"params":[]`)

	bar := d.For("web3_bar")
	require.Len(t, bar, 1)
	assert.Equal(t, diag.Warn, bar[0].Severity)
	kill := d.For("parity_killAccount")
	require.Len(t, kill, 1)
	assert.Equal(t, diag.Error, kill[0].Severity)
	assert.Equal(t, "parity_killAccount has no examples (accounts)", kill[0].Message)
	assert.Len(t, d.For("parity_hidden"), 1)
	assert.Len(t, d.For("parity_dappsPort"), 1)
}

func TestGenerateIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	g, _ := newGenerator(fs)
	written, err := g.Generate(testSchema())
	require.NoError(t, err)
	first := map[string][]byte{}
	for _, path := range written {
		b, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		first[path] = b
	}

	again, err := g.Generate(testSchema())
	require.NoError(t, err)
	assert.Equal(t, written, again)
	for _, path := range again {
		b, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.Equal(t, first[path], b, path)
	}
}

func TestGenerateExistingDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("docs", 0o755))
	g, _ := newGenerator(fs)
	_, err := g.Generate(testSchema())
	assert.NoError(t, err)
}

func TestGenerateUnwritable(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	g, _ := newGenerator(fs)
	_, err := g.Generate(testSchema())
	assert.Error(t, err)
}

func TestGenerateReportsInvalidSchema(t *testing.T) {
	fs := afero.NewMemMapFs()
	g, d := newGenerator(fs)
	schema := types.Schema{"eth": {Methods: map[string]*types.Method{
		"bad": {Returns: &types.Field{Type: types.String, Details: types.Details{"x": {Type: types.String}}}},
	}}}
	written, err := g.Generate(schema)
	require.NoError(t, err)
	assert.Len(t, written, 1)
	found := false
	for _, e := range d.Entries() {
		if e.Severity == diag.Error && e.Method == "" {
			found = true
		}
	}
	assert.True(t, found)
}
