package sales

import (
	"slices"

	"github.com/de-tools/sales-report/pkg/models/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const DefaultTopN = 5

// Summarize computes order count, sales total and the topN cities by summed
// sales and categories by order count. Records with an empty city or category
// are left out of that grouping only.
func Summarize(ds domain.Dataset, topN int) domain.Summary {
	total := decimal.Zero
	for _, r := range ds {
		total = total.Add(r.Sales)
	}

	return domain.Summary{
		TotalOrders:   len(ds),
		TotalSales:    total,
		TopCities:     topCities(ds, topN),
		TopCategories: topCategories(ds, topN),
	}
}

// topCities visits groups in key order before the stable sort, so equal
// totals keep alphabetical order.
func topCities(ds domain.Dataset, n int) []domain.CityTotal {
	sums := make(map[string]decimal.Decimal)
	for _, r := range ds {
		if r.City == "" {
			continue
		}
		sums[r.City] = sums[r.City].Add(r.Sales)
	}

	keys := lo.Keys(sums)
	slices.Sort(keys)

	ranked := lo.Map(keys, func(city string, _ int) domain.CityTotal {
		return domain.CityTotal{City: city, Total: sums[city]}
	})
	slices.SortStableFunc(ranked, func(a, b domain.CityTotal) int {
		return b.Total.Cmp(a.Total)
	})
	return head(ranked, n)
}

// topCategories visits groups in first-seen order before the stable sort,
// so equal counts keep input order.
func topCategories(ds domain.Dataset, n int) []domain.CategoryCount {
	labelled := lo.Filter(ds, func(r domain.Record, _ int) bool {
		return r.Category != ""
	})
	counts := lo.CountValuesBy(labelled, func(r domain.Record) string {
		return r.Category
	})
	order := lo.Uniq(lo.Map(labelled, func(r domain.Record, _ int) string {
		return r.Category
	}))

	ranked := lo.Map(order, func(category string, _ int) domain.CategoryCount {
		return domain.CategoryCount{Category: category, Count: counts[category]}
	})
	slices.SortStableFunc(ranked, func(a, b domain.CategoryCount) int {
		return b.Count - a.Count
	})
	return head(ranked, n)
}

func head[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	return s[:min(n, len(s))]
}
