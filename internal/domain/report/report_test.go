package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

func fixtureSales() []*entity.Sale {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	return []*entity.Sale{
		{ID: 1, SaleDate: day(2025, 11, 3), Price: price("1000.00"), Profit: price("200.00"), PaymentMethod: "cash", Purpose: "meat", Status: entity.SaleStatusCompleted},
		{ID: 2, SaleDate: day(2025, 11, 3), Price: price("1500.00"), Profit: price("-100.00"), PaymentMethod: "bank", Purpose: "breeding", Status: entity.SaleStatusCompleted},
		{ID: 3, SaleDate: day(2025, 11, 20), Price: price("800.00"), Profit: price("50.00"), PaymentMethod: "cash", Purpose: "meat", Status: entity.SaleStatusPending},
		{ID: 4, SaleDate: day(2025, 12, 1), Price: price("2000.00"), Profit: price("600.00"), PaymentMethod: "mobile", Purpose: "dairy", Status: entity.SaleStatusCompleted},
		{ID: 5, SaleDate: day(2026, 1, 15), Price: price("900.00"), Profit: price("150.00"), PaymentMethod: "cash", Purpose: "meat", Status: entity.SaleStatusCancelled},
	}
}

func TestSaleStats_Partitioning(t *testing.T) {
	sales := fixtureSales()

	groupings := []SaleGrouping{GroupByDay, GroupByMonth, GroupByYear, GroupByPaymentMethod, GroupByPurpose, GroupByStatus}
	for _, grouping := range groupings {
		t.Run(string(grouping), func(t *testing.T) {
			stats := SaleStats(sales, grouping)

			// Every sale appears in exactly one group.
			total := 0
			revenue := decimal.Zero
			for _, stat := range stats {
				total += stat.TotalSales
				revenue = revenue.Add(stat.TotalRevenue)
			}
			if total != len(sales) {
				t.Errorf("expected %d sales across groups, got %d", len(sales), total)
			}
			if !revenue.Equal(decimal.RequireFromString("6200.00")) {
				t.Errorf("expected total revenue 6200.00, got %s", revenue)
			}
		})
	}
}

func TestSaleStats_MonthlyKeys(t *testing.T) {
	stats := SaleStats(fixtureSales(), GroupByMonth)

	if len(stats) != 3 {
		t.Fatalf("expected 3 monthly groups, got %d", len(stats))
	}
	expectedKeys := []string{"2025-11", "2025-12", "2026-01"}
	for i, key := range expectedKeys {
		if stats[i].Key != key {
			t.Errorf("expected key %q at position %d, got %q", key, i, stats[i].Key)
		}
	}

	november := stats[0]
	if november.TotalSales != 3 {
		t.Errorf("expected 3 sales in 2025-11, got %d", november.TotalSales)
	}
	if !november.TotalRevenue.Equal(decimal.RequireFromString("3300.00")) {
		t.Errorf("expected 2025-11 revenue 3300.00, got %s", november.TotalRevenue)
	}
	if !november.TotalProfit.Equal(decimal.RequireFromString("150.00")) {
		t.Errorf("expected 2025-11 profit 150.00, got %s", november.TotalProfit)
	}
}

func TestSaleStats_PaymentMethod(t *testing.T) {
	stats := SaleStats(fixtureSales(), GroupByPaymentMethod)

	byKey := make(map[string]SaleStat)
	for _, stat := range stats {
		byKey[stat.Key] = stat
	}
	if byKey["cash"].TotalSales != 3 {
		t.Errorf("expected 3 cash sales, got %d", byKey["cash"].TotalSales)
	}
	if !byKey["cash"].TotalRevenue.Equal(decimal.RequireFromString("2700.00")) {
		t.Errorf("expected cash revenue 2700.00, got %s", byKey["cash"].TotalRevenue)
	}
}

func TestParseSaleGrouping(t *testing.T) {
	if _, ok := ParseSaleGrouping("weekly"); ok {
		t.Error("expected weekly to be rejected")
	}
	if grouping, ok := ParseSaleGrouping("payment_method"); !ok || grouping != GroupByPaymentMethod {
		t.Errorf("expected payment_method grouping, got (%q, %v)", grouping, ok)
	}
}

func TestCategorySummary(t *testing.T) {
	animals := []*entity.Animal{
		{ID: 1, Category: "dairy"},
		{ID: 2, Category: "dairy"},
		{ID: 3, Category: "meat"},
		{ID: 4, Category: ""},
		{ID: 5, Category: "   "},
	}

	summary := CategorySummary(animals)

	if len(summary) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(summary))
	}
	byCategory := make(map[string]int)
	for _, bucket := range summary {
		byCategory[bucket.Category] = bucket.Count
	}
	if byCategory["dairy"] != 2 || byCategory["meat"] != 1 {
		t.Errorf("unexpected named buckets: %v", byCategory)
	}
	if byCategory[UncategorizedBucket] != 2 {
		t.Errorf("expected 2 uncategorized animals, got %d", byCategory[UncategorizedBucket])
	}
}
