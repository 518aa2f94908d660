package testutil

import (
	"fmt"
	"testing"

	"hr_portal_backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB - отдельная in-memory SQLite база на тест, уже смигрированная
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(database.Config{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err, "не удалось открыть тестовую БД")
	require.NoError(t, database.AutoMigrate(db), "не удалось выполнить AutoMigrate")

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
