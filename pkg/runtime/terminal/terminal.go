package terminal

import (
	"io"
	"os"

	"github.com/de-tools/sales-report/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-report/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-report/pkg/services/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	loader     *config.Loader
	settings   *config.Settings
	configFile string
	logs       io.Writer
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logs   io.Writer
	Args   []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}

	cli := &CLI{
		loader:   config.NewLoader(),
		logs:     opts.Logs,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.Logs)
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	settings := func() *config.Settings { return cli.settings }
	generate := commands.NewGenerateCmd(settings, cli.reporter)

	cmd := &cobra.Command{
		Use:               "sales-report",
		Short:             "Summarize a sales dataset into a chart and a PDF report",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
		RunE:              generate.Run,
	}

	cmd.PersistentFlags().StringVar(&cli.configFile, "config", "", "settings file (yaml, json, toml or ini)")
	cli.loader.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(commands.NewSummaryCmd(settings, cli.reporter))
	cmd.AddCommand(commands.NewProfilesCmd(settings))

	return cmd
}

// setup resolves settings and attaches the logger to the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := cli.loader.Load(cmd.Context(), cli.configFile)
	if err != nil {
		return err
	}
	cli.settings = settings

	logger := zerolog.New(cli.logs).
		Level(settings.Level()).
		With().
		Timestamp().
		Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().
		Str("input", settings.Input).
		Str("profile", settings.Profile).
		Msg("settings resolved")
	return nil
}
