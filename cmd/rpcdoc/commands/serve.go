package commands

import (
	"fmt"

	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/example"
	"github.com/DOIDFoundation/rpcdoc/flags"
	"github.com/DOIDFoundation/rpcdoc/interfaces"
	"github.com/DOIDFoundation/rpcdoc/rpc"
	"github.com/cometbft/cometbft/libs/os"
	"github.com/spf13/cobra"
)

// ServeCmd is the command that serves the documented API over JSON-RPC.
var ServeCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"start", "run"},
	Short:   "Serve the reference over JSON-RPC and HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := loadConfig()
		if err != nil {
			return err
		}

		renderer, d := newRenderer(cfg, registry)
		api := rpc.NewDocsAPI(interfaces.Schema(), renderer, registry)
		if n := d.Count(diag.Error); n > 0 {
			logger.Error("rendered with errors", "errors", n)
		}

		s := rpc.NewRPC(logger.With("module", "rpc"), api)
		if err := s.Start(); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		logger.Info("started server", "modules", len(api.Modules()))

		// Stop upon receiving SIGTERM or CTRL-C.
		os.TrapSignal(logger, func() {
			if s.IsRunning() {
				if err := s.Stop(); err != nil {
					logger.Error("unable to stop the server", "error", err)
				}
			}
		})

		// Run forever.
		select {}
	},
}

func init() {
	ServeCmd.Flags().String(flags.RPC_Addr, rpc.DefaultConfig.ListenAddress, "address the server listens on")
	ServeCmd.Flags().String(flags.Output_Endpoint, example.DefaultEndpoint, "endpoint the example requests are sent to")
}
