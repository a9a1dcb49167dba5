package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/DOIDFoundation/rpcdoc/flags"
	"github.com/DOIDFoundation/rpcdoc/interfaces"
	"github.com/DOIDFoundation/rpcdoc/markdown"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var ErrCheckFailed = errors.New("check failed")

// CheckCmd renders the documented API without writing it and prints what
// was found.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the schema and summarize diagnostics per module",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := loadConfig()
		if err != nil {
			return err
		}

		reports, invalid := markdown.Check(interfaces.Schema(), registry, logger.With("module", "diag"))
		var merr *multierror.Error
		if errors.As(invalid, &merr) {
			for _, e := range merr.Errors {
				logger.Error("invalid schema", "err", e)
			}
		} else if invalid != nil {
			logger.Error("invalid schema", "err", invalid)
		}

		errs := renderSummary(cmd.OutOrStdout(), reports)
		if cfg.Strict && (invalid != nil || errs > 0) {
			return fmt.Errorf("%w: %d error diagnostics, schema valid: %t", ErrCheckFailed, errs, invalid == nil)
		}
		return nil
	},
}

func init() {
	CheckCmd.Flags().Bool(flags.Check_Strict, false, "fail on error level diagnostics and invalid schemas")
}

// renderSummary writes the reports as a table and returns the number of
// error level diagnostics.
func renderSummary(w io.Writer, reports []markdown.Report) int {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Module", "Methods", "Documented", "Skipped", "Info", "Warn", "Error"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	var total markdown.Report
	for _, r := range reports {
		table.Append(reportRow(r.Group, r))
		total.Methods += r.Methods
		total.Documented += r.Documented
		total.Skipped += r.Skipped
		total.Info += r.Info
		total.Warn += r.Warn
		total.Error += r.Error
	}
	table.SetFooter(reportRow("Total", total))
	table.Render()
	return total.Error
}

func reportRow(name string, r markdown.Report) []string {
	return []string{
		name,
		strconv.Itoa(r.Methods),
		strconv.Itoa(r.Documented),
		strconv.Itoa(r.Skipped),
		strconv.Itoa(r.Info),
		strconv.Itoa(r.Warn),
		strconv.Itoa(r.Error),
	}
}
