package commands

import (
	"fmt"
	"os"

	"github.com/DOIDFoundation/rpcdoc/config"
	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/flags"
	"github.com/DOIDFoundation/rpcdoc/markdown"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/cometbft/cometbft/libs/cli"
	cmtflags "github.com/cometbft/cometbft/libs/cli/flags"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logger  = log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	verbose bool
)

// RootCmd is the root command for rpcdoc. It is called once in the main
// function.
var RootCmd = &cobra.Command{
	Use:          "rpcdoc",
	Short:        "JSON-RPC reference generator",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		viper.AddConfigPath(".")
		if viper.GetBool(flags.Trace) {
			logger = log.NewTracingLogger(logger)
		}

		logger, err = cmtflags.ParseLogLevel(viper.GetString(flags.Log_Level), logger.With("module", "main"), cmd.Flag(flags.Log_Level).DefValue)
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().String(flags.Log_Level, "info", "level of logging, can be debug, info, error, none or comma-separated list of module:level pairs with an optional *:level pair (* means all other modules). e.g. 'markdown:debug,*:error'")
	RootCmd.PersistentFlags().StringSlice(flags.Types_Overrides, nil, "display name overrides as <Type>=<name> pairs, e.g. 'Quantity=Integer'")
	RootCmd.AddCommand(
		GenerateCmd,
		CheckCmd,
		ServeCmd,
		VersionCmd,
		cli.NewCompletionCmd(RootCmd, true),
	)
}

// loadConfig reads the settings of the commands that render the API and
// builds the type registry from the configured overrides.
func loadConfig() (*config.Config, *types.Registry, error) {
	cfg := config.Load()
	registry, err := cfg.Registry()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("loaded config", "output", cfg.OutputDir, "endpoint", cfg.Endpoint, "overrides", len(cfg.TypeOverrides), "strict", cfg.Strict)
	return cfg, registry, nil
}

// newRenderer returns a renderer for cfg along with the reporter it records
// findings to.
func newRenderer(cfg *config.Config, registry *types.Registry) (*markdown.Renderer, *diag.Reporter) {
	d := diag.NewReporter(logger.With("module", "diag"))
	return markdown.NewRenderer(registry, d, cfg.Endpoint), d
}
