package markdown

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// Generator writes the reference of a schema, one `<group>.md` per module.
type Generator struct {
	fs       afero.Fs
	dir      string
	renderer *Renderer
	logger   log.Logger
}

func NewGenerator(fs afero.Fs, dir string, renderer *Renderer, logger log.Logger) *Generator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Generator{fs: fs, dir: dir, renderer: renderer, logger: logger.With("module", "markdown")}
}

// Generate renders every module of schema and returns the paths written.
//
// Schema problems are reported as diagnostics and never stop the run. A file
// that cannot be written aborts it, files written before stay in place.
func (g *Generator) Generate(schema types.Schema) ([]string, error) {
	g.reportInvalid(schema.Validate())

	parts := Partition(schema)
	if err := g.fs.MkdirAll(g.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", g.dir, err)
	}

	var written []string
	for _, name := range parts.Names() {
		group := parts[name]
		if group == nil {
			continue
		}
		content := g.renderer.RenderGroup(name, group)
		path := filepath.Join(g.dir, name+".md")
		if err := afero.WriteFile(g.fs, path, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		g.logger.Debug("wrote module", "group", name, "path", path)
		written = append(written, path)
	}
	g.logger.Info("generated reference", "dir", g.dir, "files", len(written))
	return written, nil
}

func (g *Generator) reportInvalid(err error) {
	if err == nil {
		return
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		g.renderer.Diag().Errorf("", "invalid schema: %v", err)
		return
	}
	for _, e := range merr.Errors {
		g.renderer.Diag().Errorf("", "invalid schema: %v", e)
	}
}
