package workflow

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-report/pkg/adapters"
	"github.com/de-tools/sales-report/pkg/models/domain"
	"github.com/de-tools/sales-report/pkg/services/sales"
	"github.com/rs/zerolog"
)

type Loader interface {
	Load(ctx context.Context, path string) (domain.Dataset, error)
}

type ChartRenderer interface {
	Render(ctx context.Context, chart domain.BarChart, path string) error
}

type DocumentWriter interface {
	Write(ctx context.Context, report *domain.Report, path string) error
}

type Dependencies struct {
	Loader   Loader
	Charts   ChartRenderer
	Document DocumentWriter
}

type RunnerConfig struct {
	InputPath  string
	ChartPath  string
	ReportPath string
	Title      string
	TopN       int
}

type Result struct {
	Summary    domain.Summary
	ChartPath  string
	ReportPath string
}

// Runner executes load, summarize, chart and report stages in order. Any
// stage error stops the run.
type Runner struct {
	deps   Dependencies
	config RunnerConfig
}

func NewRunner(deps Dependencies, config RunnerConfig) *Runner {
	if config.TopN <= 0 {
		config.TopN = sales.DefaultTopN
	}
	return &Runner{deps: deps, config: config}
}

func (r *Runner) Summarize(ctx context.Context) (*domain.Summary, error) {
	ds, err := r.deps.Loader.Load(ctx, r.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	summary := sales.Summarize(ds, r.config.TopN)
	zerolog.Ctx(ctx).Info().
		Int("orders", summary.TotalOrders).
		Str("sales", summary.TotalSales.StringFixed(2)).
		Msg("dataset summarized")
	return &summary, nil
}

func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	summary, err := r.Summarize(ctx)
	if err != nil {
		return nil, err
	}

	chart := adapters.MapSummaryToChart(*summary, r.config.TopN)
	if err := r.deps.Charts.Render(ctx, chart, r.config.ChartPath); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	logger.Info().Str("path", r.config.ChartPath).Msg("chart saved")

	report := adapters.MapSummaryToReport(*summary, adapters.ReportOptions{
		Title:     r.config.Title,
		ChartPath: r.config.ChartPath,
		TopN:      r.config.TopN,
	})
	if err := r.deps.Document.Write(ctx, report, r.config.ReportPath); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info().Str("path", r.config.ReportPath).Msg("report saved")

	return &Result{
		Summary:    *summary,
		ChartPath:  r.config.ChartPath,
		ReportPath: r.config.ReportPath,
	}, nil
}
