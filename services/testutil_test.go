package services

import (
	"fmt"
	"strings"
	"testing"

	"memory-game-system/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.GameRecord{},
		&models.StatisticsSummary{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// seedUser registers a user with a provisioned summary row and returns the ID.
func seedUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()

	accounts := NewAccountService(db)
	user, err := accounts.Register(username, username+"@example.com", "secret123")
	if err != nil {
		t.Fatalf("failed to seed user %q: %v", username, err)
	}
	return user.ID
}
