package onboarding

import (
	"path/filepath"
	"testing"

	"moneymap/internal/database"
	"moneymap/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testUser(t *testing.T, db *gorm.DB, step Step) *models.User {
	t.Helper()
	user := &models.User{
		Username:              "tester",
		PasswordHash:          "hash",
		OnboardingCurrentStep: string(step),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}
