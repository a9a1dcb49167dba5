package diag_test

import (
	"testing"

	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter(t *testing.T) {
	r := diag.NewReporter(log.TestingLogger())
	r.Infof("eth_foo", "Skipping %s: %s", "eth_foo", "Deprecated")
	r.Warnf("eth_bar", "%s has a response example but not a request example", "eth_bar")
	r.Errorf("eth_baz", "%s has no examples", "eth_baz")
	r.Errorf("", "invalid schema")

	assert.Equal(t, 1, r.Count(diag.Info))
	assert.Equal(t, 1, r.Count(diag.Warn))
	assert.Equal(t, 2, r.Count(diag.Error))

	entries := r.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, diag.Entry{Severity: diag.Warn, Method: "eth_bar", Message: "eth_bar has a response example but not a request example"}, entries[1])

	baz := r.For("eth_baz")
	require.Len(t, baz, 1)
	assert.Equal(t, "eth_baz has no examples", baz[0].Message)

	r.Reset()
	assert.Empty(t, r.Entries())
}

func TestNilLogger(t *testing.T) {
	r := diag.NewReporter(nil)
	r.Warnf("m", "x")
	assert.Equal(t, 1, r.Count(diag.Warn))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", diag.Info.String())
	assert.Equal(t, "warn", diag.Warn.String())
	assert.Equal(t, "error", diag.Error.String())
}
