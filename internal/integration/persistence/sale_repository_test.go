package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

func seedAnimal(t *testing.T, db *gorm.DB, tagID string, acquisitionPrice *decimal.Decimal) *entity.Animal {
	t.Helper()
	animal := entity.NewAnimal(tagID, "Boer", entity.SexDoe)
	animal.AcquisitionPrice = acquisitionPrice
	if err := NewAnimalRepository(db).Create(context.Background(), animal); err != nil {
		t.Fatalf("failed to seed animal: %v", err)
	}
	return animal
}

func TestSaleRepository_RecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes profit from acquisition price and linked expenses", func(t *testing.T) {
		db := newTestDB(t)
		acquisition := decimal.RequireFromString("15000.00")
		animal := seedAnimal(t, db, "G-001", &acquisition)

		feed := entity.NewExpense("Feed", decimal.RequireFromString("500.50"))
		feed.AnimalID = &animal.ID
		vet := entity.NewExpense(entity.ExpenseTypeTreatment, decimal.RequireFromString("350.00"))
		vet.AnimalID = &animal.ID
		unrelated := entity.NewExpense("Feed", decimal.RequireFromString("9999"))
		expenseRepo := NewExpenseRepository(db)
		for _, e := range []*entity.Expense{feed, vet, unrelated} {
			if err := expenseRepo.Create(ctx, e); err != nil {
				t.Fatalf("failed to seed expense: %v", err)
			}
		}

		repo := NewSaleRepository(db)
		sale := entity.NewSale(animal.ID, "R. Mwangi", decimal.RequireFromString("25000.00"))
		recorded, err := repo.RecordSale(ctx, sale)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if recorded.ReceiptNumber != "RCPT-00001" {
			t.Errorf("expected receipt RCPT-00001, got %s", recorded.ReceiptNumber)
		}
		want := decimal.RequireFromString("9149.50")
		if !recorded.Profit.Equal(want) {
			t.Errorf("expected profit %s, got %s", want, recorded.Profit)
		}

		stored, err := repo.FindByID(ctx, recorded.ID)
		if err != nil {
			t.Fatalf("failed to reload sale: %v", err)
		}
		if stored.ReceiptNumber != "RCPT-00001" {
			t.Errorf("expected stored receipt RCPT-00001, got %s", stored.ReceiptNumber)
		}
		if !stored.Profit.Equal(want) {
			t.Errorf("expected stored profit %s, got %s", want, stored.Profit)
		}

		updatedAnimal, err := NewAnimalRepository(db).FindByID(ctx, animal.ID)
		if err != nil {
			t.Fatalf("failed to reload animal: %v", err)
		}
		if updatedAnimal.Status != entity.AnimalStatusSold {
			t.Errorf("expected animal status Sold, got %s", updatedAnimal.Status)
		}
	})

	t.Run("treats a missing acquisition price as zero", func(t *testing.T) {
		db := newTestDB(t)
		animal := seedAnimal(t, db, "G-002", nil)

		recorded, err := NewSaleRepository(db).RecordSale(ctx, entity.NewSale(animal.ID, "buyer", decimal.RequireFromString("8000")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.RequireFromString("8000"); !recorded.Profit.Equal(want) {
			t.Errorf("expected profit %s, got %s", want, recorded.Profit)
		}
	})

	t.Run("rejects a second sale and rolls back cleanly", func(t *testing.T) {
		db := newTestDB(t)
		animal := seedAnimal(t, db, "G-003", nil)
		repo := NewSaleRepository(db)

		if _, err := repo.RecordSale(ctx, entity.NewSale(animal.ID, "first", decimal.RequireFromString("5000"))); err != nil {
			t.Fatalf("unexpected error on first sale: %v", err)
		}

		_, err := repo.RecordSale(ctx, entity.NewSale(animal.ID, "second", decimal.RequireFromString("6000")))
		if !errors.Is(err, domainerror.ErrAnimalAlreadySold) {
			t.Fatalf("expected ErrAnimalAlreadySold, got %v", err)
		}

		var count int64
		if err := db.Model(&model.SaleModel{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count sales: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly 1 sale row, got %d", count)
		}
	})

	t.Run("rejects an unknown animal", func(t *testing.T) {
		db := newTestDB(t)

		_, err := NewSaleRepository(db).RecordSale(ctx, entity.NewSale(99, "buyer", decimal.RequireFromString("100")))
		if !errors.Is(err, domainerror.ErrAnimalNotFound) {
			t.Fatalf("expected ErrAnimalNotFound, got %v", err)
		}
	})
}

func TestSaleRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSaleRepository(db)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	recordAt := func(t *testing.T, tagID string, price string, saleDate time.Time) *entity.Sale {
		t.Helper()
		animal := seedAnimal(t, db, tagID, nil)
		sale := entity.NewSale(animal.ID, "buyer", decimal.RequireFromString(price))
		sale.SaleDate = saleDate
		recorded, err := repo.RecordSale(ctx, sale)
		if err != nil {
			t.Fatalf("failed to record sale: %v", err)
		}
		return recorded
	}

	recordAt(t, "G-010", "1000", now.AddDate(0, 0, -5))
	recordAt(t, "G-011", "2000", now.AddDate(0, 0, -60))
	recordAt(t, "G-012", "4000", now.AddDate(-1, 0, 0))

	t.Run("total price sums every sale", func(t *testing.T) {
		total, err := repo.TotalPrice(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.RequireFromString("7000"); !total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, total)
		}
	})

	t.Run("profit summary windows", func(t *testing.T) {
		summary, err := repo.ProfitSummary(ctx, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := decimal.RequireFromString("1000"); !summary.Last30Days.Equal(want) {
			t.Errorf("expected last 30 days %s, got %s", want, summary.Last30Days)
		}
		if want := decimal.RequireFromString("3000"); !summary.CurrentYear.Equal(want) {
			t.Errorf("expected current year %s, got %s", want, summary.CurrentYear)
		}
		if want := decimal.RequireFromString("7000"); !summary.Lifetime.Equal(want) {
			t.Errorf("expected lifetime %s, got %s", want, summary.Lifetime)
		}
	})

	t.Run("recent sales are limited and ordered", func(t *testing.T) {
		recent, err := repo.FindRecent(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(recent) != 2 {
			t.Fatalf("expected 2 sales, got %d", len(recent))
		}
		if !recent[0].SaleDate.After(recent[1].SaleDate) {
			t.Error("expected newest sale first")
		}
	})
}

func TestSaleRepository_FindByFilter(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSaleRepository(db)

	seed := func(t *testing.T, tagID, buyer, method string, price string) {
		t.Helper()
		animal := seedAnimal(t, db, tagID, nil)
		sale := entity.NewSale(animal.ID, buyer, decimal.RequireFromString(price))
		sale.PaymentMethod = method
		if _, err := repo.RecordSale(ctx, sale); err != nil {
			t.Fatalf("failed to seed sale: %v", err)
		}
	}

	seed(t, "G-020", "Rose Mwangi", "cash", "1000")
	seed(t, "G-021", "Daniel Otieno", "mpesa", "3000")
	seed(t, "G-022", "Rose Adhiambo", "mpesa", "5000")

	t.Run("matches buyer name case-insensitively", func(t *testing.T) {
		sales, err := repo.FindByFilter(ctx, adapter.SaleFilter{BuyerName: "rose"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != 2 {
			t.Errorf("expected 2 sales, got %d", len(sales))
		}
	})

	t.Run("combines predicates with AND", func(t *testing.T) {
		method := "mpesa"
		minPrice := decimal.RequireFromString("4000")
		sales, err := repo.FindByFilter(ctx, adapter.SaleFilter{PaymentMethod: &method, MinPrice: &minPrice})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != 1 {
			t.Fatalf("expected 1 sale, got %d", len(sales))
		}
		if sales[0].BuyerName != "Rose Adhiambo" {
			t.Errorf("expected Rose Adhiambo, got %s", sales[0].BuyerName)
		}
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		sales, err := repo.FindByFilter(ctx, adapter.SaleFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sales) != 3 {
			t.Errorf("expected 3 sales, got %d", len(sales))
		}
	})
}
