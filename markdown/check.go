package markdown

import (
	"github.com/DOIDFoundation/rpcdoc/diag"
	"github.com/DOIDFoundation/rpcdoc/types"
	"github.com/cometbft/cometbft/libs/log"
)

// Report sums up the findings of rendering one module.
type Report struct {
	Group      string
	Methods    int
	Documented int
	Skipped    int
	Info       int
	Warn       int
	Error      int
}

// Check renders every module of schema without writing anything and reports
// the findings per module. The returned error holds the schema validation
// failures, if any.
func Check(schema types.Schema, registry *types.Registry, logger log.Logger) ([]Report, error) {
	invalid := schema.Validate()

	parts := Partition(schema)
	reports := make([]Report, 0, len(parts))
	for _, name := range parts.Names() {
		group := parts[name]
		if group == nil {
			continue
		}
		d := diag.NewReporter(logger)
		NewRenderer(registry, d, "").RenderGroup(name, group)

		report := Report{Group: name, Methods: len(group.Methods)}
		for _, m := range group.Methods {
			if m != nil && m.Documented() {
				report.Documented++
			}
		}
		report.Skipped = report.Methods - report.Documented
		report.Info = d.Count(diag.Info)
		report.Warn = d.Count(diag.Warn)
		report.Error = d.Count(diag.Error)
		reports = append(reports, report)
	}
	return reports, invalid
}
