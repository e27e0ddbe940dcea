package adapters

import (
	"testing"

	"github.com/de-tools/sales-report/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":           "0.00",
		"100":         "100.00",
		"1234.5":      "1,234.50",
		"1234567.891": "1,234,567.89",
		"-9876.5":     "-9,876.50",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)))
		})
	}
}

func TestMapSummaryToReport_BlockSequence(t *testing.T) {
	// Given
	s := domain.Summary{
		TotalOrders: 1200,
		TotalSales:  decimal.RequireFromString("1234567.5"),
		TopCities: []domain.CityTotal{
			{City: "Lahore", Total: decimal.RequireFromString("1000000")},
			{City: "Karachi", Total: decimal.RequireFromString("234567.5")},
		},
		TopCategories: []domain.CategoryCount{
			{Category: "Mobiles", Count: 700},
		},
	}

	// When
	r := MapSummaryToReport(s, ReportOptions{ChartPath: "chart.png", TopN: 5})

	// Then
	want := []domain.Block{
		domain.TitleBlock{Text: "eCommerce Dataset Report - 2025"},
		domain.SpacerBlock{Height: 12},
		domain.TableBlock{
			Header: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Total Orders", "1200"},
				{"Total Sales (Rs.)", "1,234,567.50"},
			},
		},
		domain.SpacerBlock{Height: 20},
		domain.HeadingBlock{Text: "Top 5 Cities by Sales"},
		domain.ParagraphBlock{Text: "Lahore: Rs. 1,000,000.00"},
		domain.ParagraphBlock{Text: "Karachi: Rs. 234,567.50"},
		domain.SpacerBlock{Height: 20},
		domain.HeadingBlock{Text: "Top 5 Categories by Number of Orders"},
		domain.ParagraphBlock{Text: "Mobiles: 700 orders"},
		domain.SpacerBlock{Height: 20},
		domain.HeadingBlock{Text: "Chart: Top 5 Cities by Sales"},
		domain.ImageBlock{Path: "chart.png", Width: 400, Height: 250},
	}
	assert.Equal(t, "eCommerce Dataset Report - 2025", r.Title)
	assert.Equal(t, want, r.Blocks)
}

func TestMapSummaryToReport_EmptySummary(t *testing.T) {
	r := MapSummaryToReport(domain.Summary{}, ReportOptions{Title: "Empty", ChartPath: "c.png", TopN: 5})

	require.NotEmpty(t, r.Blocks)
	table, ok := r.Blocks[2].(domain.TableBlock)
	require.True(t, ok)
	assert.Equal(t, [][]string{{"Total Orders", "0"}, {"Total Sales (Rs.)", "0.00"}}, table.Rows)
	for _, b := range r.Blocks {
		_, isParagraph := b.(domain.ParagraphBlock)
		assert.False(t, isParagraph)
	}
	assert.IsType(t, domain.ImageBlock{}, r.Blocks[len(r.Blocks)-1])
}

func TestMapSummaryToChart(t *testing.T) {
	s := domain.Summary{TopCities: []domain.CityTotal{
		{City: "Lahore", Total: decimal.NewFromInt(300)},
		{City: "Multan", Total: decimal.NewFromInt(100)},
	}}

	c := MapSummaryToChart(s, 5)

	assert.Equal(t, "Top 5 Cities by Sales", c.Title)
	assert.Equal(t, "Total Sales (Rs)", c.YLabel)
	assert.Equal(t, []string{"Lahore", "Multan"}, c.Labels)
	assert.Equal(t, []float64{300, 100}, c.Values)
}
