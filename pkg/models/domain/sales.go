package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one cleaned row of the sales dataset
type Record struct {
	OrderDate time.Time
	Sales     decimal.Decimal
	City      string // empty when the source cell was missing
	Category  string // empty when the source cell was missing
}

// Dataset holds the records that survived cleaning, in input order
type Dataset []Record

type CityTotal struct {
	City  string
	Total decimal.Decimal
}

type CategoryCount struct {
	Category string
	Count    int
}

// Summary is the set of aggregates computed over a Dataset
type Summary struct {
	TotalOrders   int
	TotalSales    decimal.Decimal
	TopCities     []CityTotal
	TopCategories []CategoryCount
}
