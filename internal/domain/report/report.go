// Package report provides pure aggregation over already-loaded entity
// collections. Nothing in this package touches the database.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// SaleGrouping selects the key a set of sales is grouped by.
type SaleGrouping string

const (
	GroupByDay           SaleGrouping = "daily"
	GroupByMonth         SaleGrouping = "monthly"
	GroupByYear          SaleGrouping = "yearly"
	GroupByPaymentMethod SaleGrouping = "payment_method"
	GroupByPurpose       SaleGrouping = "purpose"
	GroupByStatus        SaleGrouping = "status"
)

// ParseSaleGrouping maps a raw path segment onto a grouping.
func ParseSaleGrouping(raw string) (SaleGrouping, bool) {
	switch SaleGrouping(raw) {
	case GroupByDay, GroupByMonth, GroupByYear, GroupByPaymentMethod, GroupByPurpose, GroupByStatus:
		return SaleGrouping(raw), true
	}
	return "", false
}

// SaleStat is one group in a sales aggregation: the grouping key, the number
// of sales in the group, the revenue (sum of prices) and the profit (sum of
// the frozen per-sale profit figures).
type SaleStat struct {
	Key          string
	TotalSales   int
	TotalRevenue decimal.Decimal
	TotalProfit  decimal.Decimal
}

// SaleStats groups sales by the given grouping. Every sale lands in exactly
// one group; groups are returned sorted by key.
func SaleStats(sales []*entity.Sale, grouping SaleGrouping) []SaleStat {
	groups := make(map[string]*SaleStat)
	for _, sale := range sales {
		key := saleKey(sale, grouping)
		stat, ok := groups[key]
		if !ok {
			stat = &SaleStat{Key: key, TotalRevenue: decimal.Zero, TotalProfit: decimal.Zero}
			groups[key] = stat
		}
		stat.TotalSales++
		stat.TotalRevenue = stat.TotalRevenue.Add(sale.Price)
		stat.TotalProfit = stat.TotalProfit.Add(sale.Profit)
	}

	stats := make([]SaleStat, 0, len(groups))
	for _, stat := range groups {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Key < stats[j].Key })
	return stats
}

func saleKey(sale *entity.Sale, grouping SaleGrouping) string {
	switch grouping {
	case GroupByDay:
		return sale.SaleDate.Format("2006-01-02")
	case GroupByMonth:
		return sale.SaleDate.Format("2006-01")
	case GroupByYear:
		return sale.SaleDate.Format("2006")
	case GroupByPaymentMethod:
		return sale.PaymentMethod
	case GroupByPurpose:
		return sale.Purpose
	default:
		return string(sale.Status)
	}
}

// UncategorizedBucket is the bucket animals without a category fall into.
const UncategorizedBucket = "uncategorized"

// CategoryCount is one bucket of the animal category summary.
type CategoryCount struct {
	Category string
	Count    int
}

// CategorySummary counts animals per category, mapping empty or whitespace
// categories to the explicit uncategorized bucket. Buckets are sorted by
// category name.
func CategorySummary(animals []*entity.Animal) []CategoryCount {
	counts := make(map[string]int)
	for _, animal := range animals {
		category := strings.TrimSpace(animal.Category)
		if category == "" {
			category = UncategorizedBucket
		}
		counts[category]++
	}

	summary := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		summary = append(summary, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Category < summary[j].Category })
	return summary
}
