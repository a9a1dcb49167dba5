package commands

import (
	"github.com/DOIDFoundation/rpcdoc/config"
	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/example"
	"github.com/DOIDFoundation/rpcdoc/flags"
	"github.com/DOIDFoundation/rpcdoc/interfaces"
	"github.com/DOIDFoundation/rpcdoc/markdown"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// GenerateCmd writes the reference of the documented API.
var GenerateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Write one Markdown file per module",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := loadConfig()
		if err != nil {
			return err
		}

		renderer, d := newRenderer(cfg, registry)
		files, err := markdown.NewGenerator(afero.NewOsFs(), cfg.OutputDir, renderer, logger).Generate(interfaces.Schema())
		if err != nil {
			return err
		}
		for _, f := range files {
			logger.Info("written", "file", f)
		}
		logger.Info("done", "files", len(files), "info", d.Count(diag.Info), "warn", d.Count(diag.Warn), "error", d.Count(diag.Error))
		return nil
	},
}

func init() {
	GenerateCmd.Flags().String(flags.Output_Dir, config.DefaultConfig().OutputDir, "directory the reference files are written to")
	GenerateCmd.Flags().String(flags.Output_Endpoint, example.DefaultEndpoint, "endpoint the example requests are sent to")
}
