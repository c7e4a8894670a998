package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSaleProfit(t *testing.T) {
	t.Run("price minus acquisition minus linked expenses", func(t *testing.T) {
		price := decimal.RequireFromString("25000.00")
		acquisition := decimal.RequireFromString("15000.00")
		expenses := decimal.RequireFromString("850.50")

		profit := SaleProfit(price, &acquisition, expenses)

		expected := decimal.RequireFromString("9149.50")
		if !profit.Equal(expected) {
			t.Errorf("expected profit %s, got %s", expected, profit)
		}
	})

	t.Run("missing acquisition price counts as zero", func(t *testing.T) {
		price := decimal.RequireFromString("1200.00")
		expenses := decimal.RequireFromString("200.00")

		profit := SaleProfit(price, nil, expenses)

		if !profit.Equal(decimal.RequireFromString("1000.00")) {
			t.Errorf("expected profit 1000.00, got %s", profit)
		}
	})

	t.Run("loss is permitted", func(t *testing.T) {
		price := decimal.RequireFromString("500.00")
		acquisition := decimal.RequireFromString("800.00")

		profit := SaleProfit(price, &acquisition, decimal.Zero)

		if !profit.IsNegative() {
			t.Errorf("expected negative profit, got %s", profit)
		}
	})
}

func TestReceiptNumber(t *testing.T) {
	cases := []struct {
		id       uint
		expected string
	}{
		{7, "RCPT-00007"},
		{1, "RCPT-00001"},
		{12345, "RCPT-12345"},
		{123456, "RCPT-123456"},
	}

	for _, tc := range cases {
		if got := ReceiptNumber(tc.id); got != tc.expected {
			t.Errorf("ReceiptNumber(%d) = %q, expected %q", tc.id, got, tc.expected)
		}
	}
}

func TestParseSaleStatus(t *testing.T) {
	if status, ok := ParseSaleStatus("Completed"); !ok || status != SaleStatusCompleted {
		t.Errorf("expected completed, got (%q, %v)", status, ok)
	}
	if _, ok := ParseSaleStatus("refunded"); ok {
		t.Error("expected refunded to be rejected")
	}
}
