package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

const schemaName = "goat_farm"

var once sync.Once
var db *Db

// Db wraps an in-memory sqlite connection migrated with the farm schema.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

func farmModels() map[string]any {
	return map[string]any{
		"users":            &model.UserModel{},
		"animals":          &model.AnimalModel{},
		"treatments":       &model.TreatmentModel{},
		"sales":            &model.SaleModel{},
		"expenses":         &model.ExpenseModel{},
		"breeding_records": &model.BreedingRecordModel{},
	}
}

// NewDb returns the shared test database, opening it on first use.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: farmModels(),
	}

	if err := newDb.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return newDb
}

// ClearDB recreates the schema and removes every row from every table.
func (d *Db) ClearDB() (err error) {
	for attempt := 0; attempt < 5; attempt++ {
		if err = d.DbConn.Exec("ATTACH ':memory:' AS " + schemaName).Error; err != nil {
			if !strings.Contains(err.Error(), "is already in use") {
				return err
			}
		} else {
			if err = d.migrate(); err != nil {
				continue
			}

			time.Sleep(200 * time.Millisecond)

			_ = d.DbConn.Exec("PRAGMA schema_version").Error

			if err = d.checkTables(); err != nil {
				continue
			}
		}

		if err = d.reset(); err != nil {
			continue
		}

		return nil
	}
	return fmt.Errorf("failed to clear database after 5 attempts: %w", err)
}

func (d *Db) migrate() (err error) {
	tx := d.DbConn.Exec("BEGIN EXCLUSIVE")
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			err = fmt.Errorf("panic occurred while migrating test DB: %v", rec)
		} else if err != nil {
			if errTx := tx.Exec("ROLLBACK").Error; errTx != nil {
				panic(errTx)
			}
		} else {
			if errTx := tx.Exec("COMMIT").Error; errTx != nil {
				panic(errTx)
			}
		}
	}()

	modelList := make([]any, 0, len(d.models))
	for table, m := range d.models {
		modelList = append(modelList, m)

		if err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Error; err != nil {
			return err
		}
	}

	if err := tx.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, m := range modelList {
		if !tx.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}

	return nil
}

func (d *Db) reset() error {
	for table, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

func (d *Db) checkTables() error {
	for _, m := range d.models {
		if !d.DbConn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
		if err := d.DbConn.Find(&m).Error; err != nil {
			return fmt.Errorf("failed to query table for model %T: %w", m, err)
		}
	}

	return nil
}

// GetModel returns the gorm model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
