package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/DOIDFoundation/rpcdoc/version"
	"github.com/spf13/cobra"
)

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show build environment")
}

// VersionCmd prints the version of rpcdoc.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Version:", version.VersionWithMeta)
		if version.Commit != "" {
			fmt.Fprintln(out, "Git Commit:", version.Commit)
		}
		if version.Date != "" {
			fmt.Fprintln(out, "Git Commit Date:", version.Date)
		}
		if !verbose {
			return
		}
		fmt.Fprintln(out, "Architecture:", runtime.GOARCH)
		fmt.Fprintln(out, "Go Version:", runtime.Version())
		fmt.Fprintln(out, "Operating System:", runtime.GOOS)
		fmt.Fprintf(out, "GOPATH=%s\n", os.Getenv("GOPATH"))
		fmt.Fprintf(out, "GOROOT=%s\n", runtime.GOROOT())
	},
}
