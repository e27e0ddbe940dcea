package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_DropsUnparseableRows(t *testing.T) {
	// Given
	path := writeFile(t, "orders.csv", `order_id,order_date,sales,city,category
1,2024-01-01,100,Lahore,Mobiles
2,bad,50,Lahore,Mobiles
3,13/01/2024,abc,Karachi,Fashion
4,14/01/2024,,Karachi,Fashion
5,15/01/2024,75.5,Karachi,Fashion
`)

	// When
	ds, err := NewLoader(Options{}).Load(context.Background(), path)

	// Then
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "Lahore", ds[0].City)
	assert.Equal(t, "100", ds[0].Sales.String())
	assert.Equal(t, "Karachi", ds[1].City)
	assert.Equal(t, "Fashion", ds[1].Category)
	assert.Equal(t, "75.5", ds[1].Sales.String())
	assert.Equal(t, 15, ds[1].OrderDate.Day())
}

func TestLoader_Load_DayFirstSeparators(t *testing.T) {
	// Given
	path := writeFile(t, "orders.csv", `order_date,sales,city,category
13-01-2024,100,Lahore,Mobiles
01-02-2024,200,Karachi,Fashion
2-3-2024,300,Multan,Books
13.01.2024,400,Quetta,Books
1700000000,500,Lahore,Mobiles
`)

	// When
	ds, err := NewLoader(Options{}).Load(context.Background(), path)

	// Then
	require.NoError(t, err)
	require.Len(t, ds, 4)
	assert.Equal(t, time.February, ds[1].OrderDate.Month())
	assert.Equal(t, 1, ds[1].OrderDate.Day())
	assert.Equal(t, time.March, ds[2].OrderDate.Month())
	assert.Equal(t, "Quetta", ds[3].City)
}

func TestLoader_Load_KeepsRowsWithMissingLabels(t *testing.T) {
	path := writeFile(t, "orders.csv", "order_date,sales,city,category\n"+
		"2024-01-01,10,,Books\n"+
		"2024-01-02,20,Multan,NULL\n"+
		"2024-01-03,30\n")

	ds, err := NewLoader(Options{}).Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, ds, 3)
	assert.Equal(t, "", ds[0].City)
	assert.Equal(t, "Books", ds[0].Category)
	assert.Equal(t, "Multan", ds[1].City)
	assert.Equal(t, "", ds[1].Category)
	assert.Equal(t, "", ds[2].City)
	assert.Equal(t, "", ds[2].Category)
}

func TestLoader_Load_CustomDelimiterAndBOM(t *testing.T) {
	path := writeFile(t, "orders.tsv", "\ufefforder_date\tsales\tcity\tcategory\n"+
		"01/02/2024\t12.5\tQuetta\tHome\n")

	ds, err := NewLoader(Options{Delimiter: '\t'}).Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, "Quetta", ds[0].City)
	assert.Equal(t, 2, int(ds[0].OrderDate.Month()))
}

func TestLoader_Load_HeaderOnly(t *testing.T) {
	path := writeFile(t, "orders.csv", "order_date,sales,city,category\n")

	ds, err := NewLoader(Options{}).Load(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestLoader_Load_MissingColumn(t *testing.T) {
	path := writeFile(t, "orders.csv", "order_date,amount,city,category\n2024-01-01,1,a,b\n")

	_, err := NewLoader(Options{}).Load(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "sales")
}

func TestLoader_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	_, err := NewLoader(Options{}).Load(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_Workbook(t *testing.T) {
	// Given: a workbook with the dataset on its first sheet
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"order_date", "sales", "city", "category"},
		{"13/01/2024", "300", "Lahore", "Mobiles"},
		{"not-a-date", "50", "Lahore", "Mobiles"},
		{"14/01/2024", "120.75", "Islamabad", "Books"},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	// When
	ds, err := NewLoader(Options{}).Load(context.Background(), path)

	// Then
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "Lahore", ds[0].City)
	assert.Equal(t, "120.75", ds[1].Sales.String())
}

func TestLoader_Load_WorkbookUnknownSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := NewLoader(Options{Sheet: "Orders"}).Load(context.Background(), path)

	assert.Error(t, err)
}
