package workers_test

import (
	"context"
	"testing"
	"time"

	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/testutil"
	"hr_portal_backend/internal/workers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeletionService(t *testing.T) (services.DeletionService, services.UserService) {
	t.Helper()
	container := services.NewServiceContainer(services.Dependencies{
		Storage:   testutil.NewMemoryStorage(),
		Accounts:  identity.NewMemoryAccountManager(),
		Mailer:    &testutil.FakeMailer{},
		Generator: &testutil.FakeGenerator{},
		Meetings:  &testutil.FakeMeetings{},
		Workflow:  &testutil.FakeWorkflow{},
	})
	return container.DeletionService, container.UserService
}

func TestDeletionWorker_RunOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	deletion, users := newDeletionService(t)
	ctx := context.Background()

	testutil.CreateJob(t, db, "u1", "QA")
	_, err := users.RequestDeletion(ctx, db, "u1")
	require.NoError(t, err)

	worker := workers.NewDeletionWorker(db, deletion, time.Hour, 0)
	result := worker.RunOnce(ctx)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Purged)

	var jobs int64
	require.NoError(t, db.Model(&models.Job{}).Count(&jobs).Error)
	assert.Zero(t, jobs)

	result = worker.RunOnce(ctx)
	require.NotNil(t, result)
	assert.Zero(t, result.Processed)
}

func TestDeletionWorker_StartSweepsImmediately(t *testing.T) {
	db := testutil.NewTestDB(t)
	deletion, users := newDeletionService(t)

	_, err := users.RequestDeletion(context.Background(), db, "u1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers.NewDeletionWorker(db, deletion, time.Hour, 10).Start(ctx)

	assert.Eventually(t, func() bool {
		var pending int64
		if err := db.Model(&models.UserProfile{}).Count(&pending).Error; err != nil {
			return false
		}
		return pending == 0
	}, 2*time.Second, 20*time.Millisecond)
}
