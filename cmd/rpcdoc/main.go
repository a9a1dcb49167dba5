package main

import (
	"os"
	"path/filepath"

	"github.com/DOIDFoundation/rpcdoc/cmd/rpcdoc/commands"

	"github.com/cometbft/cometbft/libs/cli"
)

func main() {
	cmd := cli.PrepareBaseCmd(commands.RootCmd, "RPCDOC", os.ExpandEnv(filepath.Join("$HOME", ".rpcdoc")))

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
