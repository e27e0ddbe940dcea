package commands

import (
	"github.com/de-tools/sales-report/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	settings SettingsProvider
	reporter *export.Reporter
}

func NewGenerateCmd(settings SettingsProvider, reporter *export.Reporter) *GenerateCmd {
	return &GenerateCmd{settings: settings, reporter: reporter}
}

// Run loads the dataset, writes the chart and the PDF report, and prints the
// report path.
func (gc *GenerateCmd) Run(cmd *cobra.Command, _ []string) error {
	res, err := NewPipeline(gc.settings()).Run(cmd.Context())
	if err != nil {
		return err
	}
	return gc.reporter.Generated(res.ReportPath)
}
