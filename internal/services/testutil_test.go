package services

import (
	"testing"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"github.com/langfu/langfu-backend/internal/logger"
	"github.com/langfu/langfu-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// A fresh connection would see its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&types.User{},
		&types.Word{},
		&types.Example{},
		&types.WordHistory{},
		&types.Progress{},
		&types.Story{},
		&types.VocabularySet{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	return log
}

func seedUser(t *testing.T, db *gorm.DB) *types.User {
	t.Helper()
	user := &types.User{
		ID:              uuid.New(),
		Email:           uuid.New().String() + "@example.com",
		Password:        "irrelevant",
		Name:            "Test User",
		CurrentLanguage: "de",
		DailyGoal:       10,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedWord(t *testing.T, db *gorm.DB, l2, l1 string) *types.Word {
	t.Helper()
	word := &types.Word{
		ID:       uuid.New(),
		Language: "de",
		Level:    "A1",
		Topic:    "test",
		L2:       l2,
		L1:       l1,
	}
	if err := db.Create(word).Error; err != nil {
		t.Fatalf("failed to seed word: %v", err)
	}
	return word
}
