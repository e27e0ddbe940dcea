package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-report/pkg/adapters"
	"github.com/de-tools/sales-report/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  40,
		ValueWidth: 24,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// Generated announces the finished report.
func (c *Reporter) Generated(path string) error {
	_, err := fmt.Fprintln(c.writer, "PDF report generated:", path)
	return err
}

type summaryView struct {
	*domain.Summary
	CitiesTitle     string
	CategoriesTitle string
}

// Handle prints the summary as console tables.
func (c *Reporter) Handle(summary *domain.Summary, topN int) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %*v |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"amount": adapters.FormatAmount,
	}

	tmpl := `
Total Orders: {{.TotalOrders}}
Total Sales: Rs. {{amount .TotalSales}}

=== {{.CitiesTitle}} ===
{{separator}}
{{formatRow "City" "Sales (Rs.)"}}
{{separator}}
{{range .TopCities}}{{formatRow .City (amount .Total)}}
{{end}}{{separator}}

=== {{.CategoriesTitle}} ===
{{separator}}
{{formatRow "Category" "Orders"}}
{{separator}}
{{range .TopCategories}}{{formatRow .Category .Count}}
{{end}}{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summaryView{
		Summary:         summary,
		CitiesTitle:     adapters.CitiesHeading(topN),
		CategoriesTitle: adapters.CategoriesHeading(topN),
	})
}
