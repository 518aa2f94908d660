package database

import (
	"fmt"
	"testing"

	"hr_portal_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLiteAndMigrate(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := Open(Config{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))
	for _, m := range models.AllModels() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	job := &models.Job{Title: "QA", Description: "d", CreatedBy: "u1", Status: models.JobStatusActive}
	require.NoError(t, db.Create(job).Error)
	assert.Len(t, job.ID, 36)
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	_, err := Open(Config{Driver: "sqlite"})
	assert.Error(t, err)

	_, err = Open(Config{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}
