package adapters

import (
	"fmt"
	"strconv"

	"github.com/de-tools/sales-report/pkg/models/domain"
)

const (
	DefaultTitle    = "eCommerce Dataset Report - 2025"
	DefaultCurrency = "Rs."

	ChartWidth  = 400
	ChartHeight = 250
)

type ReportOptions struct {
	Title     string
	Currency  string
	ChartPath string
	TopN      int
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	return o
}

func CitiesHeading(topN int) string {
	return fmt.Sprintf("Top %d Cities by Sales", topN)
}

func CategoriesHeading(topN int) string {
	return fmt.Sprintf("Top %d Categories by Number of Orders", topN)
}

// MapSummaryToReport lays the summary out as title, summary table, city
// lines, category lines and the chart image.
func MapSummaryToReport(s domain.Summary, opts ReportOptions) *domain.Report {
	opts = opts.withDefaults()

	blocks := []domain.Block{
		domain.TitleBlock{Text: opts.Title},
		domain.SpacerBlock{Height: 12},
		domain.TableBlock{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Total Orders", strconv.Itoa(s.TotalOrders)},
				{fmt.Sprintf("Total Sales (%s)", opts.Currency), FormatAmount(s.TotalSales)},
			},
		},
		domain.SpacerBlock{Height: 20},
		domain.HeadingBlock{Text: CitiesHeading(opts.TopN)},
	}

	for _, c := range s.TopCities {
		blocks = append(blocks, domain.ParagraphBlock{
			Text: fmt.Sprintf("%s: %s %s", c.City, opts.Currency, FormatAmount(c.Total)),
		})
	}

	blocks = append(blocks,
		domain.SpacerBlock{Height: 20},
		domain.HeadingBlock{Text: CategoriesHeading(opts.TopN)},
	)

	for _, c := range s.TopCategories {
		blocks = append(blocks, domain.ParagraphBlock{
			Text: fmt.Sprintf("%s: %d orders", c.Category, c.Count),
		})
	}

	blocks = append(blocks,
		domain.SpacerBlock{Height: 20},
		domain.HeadingBlock{Text: "Chart: " + CitiesHeading(opts.TopN)},
		domain.ImageBlock{Path: opts.ChartPath, Width: ChartWidth, Height: ChartHeight},
	)

	return &domain.Report{Title: opts.Title, Blocks: blocks}
}

// MapSummaryToChart builds the top cities bar chart.
func MapSummaryToChart(s domain.Summary, topN int) domain.BarChart {
	chart := domain.BarChart{
		Title:  CitiesHeading(topN),
		YLabel: "Total Sales (Rs)",
		Labels: make([]string, 0, len(s.TopCities)),
		Values: make([]float64, 0, len(s.TopCities)),
	}
	for _, c := range s.TopCities {
		chart.Labels = append(chart.Labels, c.City)
		chart.Values = append(chart.Values, c.Total.InexactFloat64())
	}
	return chart
}
