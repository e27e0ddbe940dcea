package commands

import (
	"os"

	"github.com/de-tools/sales-report/pkg/runtime/pdf"
	"github.com/de-tools/sales-report/pkg/services/chart"
	"github.com/de-tools/sales-report/pkg/services/config"
	"github.com/de-tools/sales-report/pkg/services/workflow"
	"github.com/de-tools/sales-report/pkg/store/dataset"
)

// SettingsProvider returns the settings resolved for the running command.
type SettingsProvider func() *config.Settings

// NewPipeline wires the loader, chart renderer and PDF writer for s. The
// document date follows the input file's modification time so an unchanged
// input yields an identical report.
func NewPipeline(s *config.Settings) *workflow.Runner {
	writerOpts := pdf.DefaultOptions()
	if info, err := os.Stat(s.Input); err == nil {
		writerOpts.CreationDate = info.ModTime()
	}

	return workflow.NewRunner(
		workflow.Dependencies{
			Loader: dataset.NewLoader(dataset.Options{
				Delimiter: s.DelimiterRune(),
				Sheet:     s.Sheet,
			}),
			Charts:   chart.NewRenderer(chart.DefaultOptions()),
			Document: pdf.NewWriter(writerOpts),
		},
		workflow.RunnerConfig{
			InputPath:  s.Input,
			ChartPath:  s.Chart,
			ReportPath: s.Report,
			Title:      s.Title,
			TopN:       s.TopN,
		},
	)
}
