package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/sales-report/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	ColumnOrderDate = "order_date"
	ColumnSales     = "sales"
	ColumnCity      = "city"
	ColumnCategory  = "category"
)

var requiredColumns = []string{ColumnOrderDate, ColumnSales, ColumnCity, ColumnCategory}

var ErrMissingColumn = errors.New("required column not found")

type Options struct {
	// Delimiter separates fields in text datasets
	Delimiter rune
	// Sheet selects the workbook sheet; the first sheet is used when empty
	Sheet string
}

type Loader struct {
	opts Options
}

func NewLoader(opts Options) *Loader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &Loader{opts: opts}
}

// Load reads the dataset at path and drops every row whose order date or
// sales value cannot be parsed.
func (l *Loader) Load(ctx context.Context, path string) (domain.Dataset, error) {
	logger := zerolog.Ctx(ctx)

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = l.readWorkbook(path)
	default:
		rows, err = l.readDelimited(path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Int("rows", len(rows)).Msg("dataset read")

	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, io.EOF)
	}

	idx, err := columnIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	ds := make(domain.Dataset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		date, ok := ParseOrderDate(cell(row, idx[ColumnOrderDate]))
		if !ok {
			continue
		}
		sales, ok := ParseSales(cell(row, idx[ColumnSales]))
		if !ok {
			continue
		}
		ds = append(ds, domain.Record{
			OrderDate: date,
			Sales:     sales,
			City:      parseLabel(cell(row, idx[ColumnCity])),
			Category:  parseLabel(cell(row, idx[ColumnCategory])),
		})
	}

	logger.Info().Str("path", path).Int("records", len(ds)).Msg("dataset loaded")
	return ds, nil
}

func (l *Loader) readDelimited(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = l.opts.Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return rows, nil
}

func (l *Loader) readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := l.opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return idx, nil
}

// cell returns "" for positions past the end of a short row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
