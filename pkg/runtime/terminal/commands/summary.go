package commands

import (
	"github.com/de-tools/sales-report/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	settings SettingsProvider
	reporter *export.Reporter
}

func NewSummaryCmd(settings SettingsProvider, reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{settings: settings, reporter: reporter}
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dataset aggregates without writing any file",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	s := sc.settings()
	summary, err := NewPipeline(s).Summarize(cmd.Context())
	if err != nil {
		return err
	}
	return sc.reporter.Handle(summary, s.TopN)
}
