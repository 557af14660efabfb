package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"stampcard-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// The pool is capped at one connection so the foreign_keys pragma holds for
// every statement.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Establishment{},
		&models.AdminUser{},
		&models.Session{},
		&models.Transaction{},
		&models.TokenRedemption{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTestEstablishment(t *testing.T, db *gorm.DB, name string) *models.Establishment {
	t.Helper()
	establishment := models.Establishment{Name: name, GridSize: 9}
	if err := db.Create(&establishment).Error; err != nil {
		t.Fatalf("create establishment: %v", err)
	}
	return &establishment
}
