package domain

// BarChart describes a single-series bar chart with nominal labels
type BarChart struct {
	Title  string
	YLabel string
	Labels []string
	Values []float64
}
