package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database per test with the full schema
// migrated. TranslateError is on so unique violations surface the same way
// they do against postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.AnimalModel{},
		&model.TreatmentModel{},
		&model.SaleModel{},
		&model.ExpenseModel{},
		&model.BreedingRecordModel{},
		&model.UserModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
