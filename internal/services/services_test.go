package services

import (
	"testing"

	"github.com/onboardai/task-engine/internal/models"
	"github.com/onboardai/task-engine/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with all migrations applied.
// A single connection keeps the memory database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Standup{},
		&models.Meeting{},
		&models.Onboarding{},
		&models.Conversation{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, userID, name string) *models.User {
	t.Helper()
	user := &models.User{UserID: userID, Name: name}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newUserRepo(db *gorm.DB) repository.UserRepository {
	return repository.NewUserRepository(db)
}
