package services_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/integrations/aitext"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/internal/testutil"
	"hr_portal_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	svc       *services.ServiceContainer
	storage   *testutil.MemoryStorage
	accounts  *identity.MemoryAccountManager
	workflow  *testutil.FakeWorkflow
	generator *testutil.FakeGenerator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		db:        testutil.NewTestDB(t),
		storage:   testutil.NewMemoryStorage(),
		accounts:  identity.NewMemoryAccountManager(),
		workflow:  &testutil.FakeWorkflow{},
		generator: &testutil.FakeGenerator{},
	}
	f.svc = services.NewServiceContainer(services.Dependencies{
		Storage:   f.storage,
		Accounts:  f.accounts,
		Mailer:    &testutil.FakeMailer{},
		Generator: f.generator,
		Meetings:  &testutil.FakeMeetings{},
		Workflow:  f.workflow,
		Extractor: &testutil.FakeExtractor{},
		ResumePolicy: services.ResumePolicy{
			MaxSize:    1024,
			Extensions: []string{".pdf"},
		},
	})
	return f
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "ожидалась AppError, получено %v", err)
	return appErr.HTTPCode
}

func appMessage(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "ожидалась AppError, получено %v", err)
	return appErr.Message
}

func TestCandidateService_ValidateResumePolicy(t *testing.T) {
	f := newFixture(t)
	cs := f.svc.CandidateService

	assert.NoError(t, cs.ValidateResume("CV.PDF", 1024))
	assert.Equal(t, http.StatusBadRequest, httpCode(t, cs.ValidateResume("cv.pdf", 1025)))
	assert.ErrorIs(t, cs.ValidateResume("cv.docx", 10), apperrors.ErrInvalidResumeType)
	assert.ErrorIs(t, cs.ValidateResume("cv", 10), apperrors.ErrInvalidResumeType)
}

func TestCandidateService_ApplySkipsDisabledWorkflow(t *testing.T) {
	f := newFixture(t)
	f.workflow.Disabled = true
	job := testutil.CreateJob(t, f.db, "owner", "QA")

	candidate, err := f.svc.CandidateService.Apply(context.Background(), f.db, job.ID, &dto.ApplyRequest{
		Name:       " Dana ",
		Email:      "Dana@Example.com",
		Phone:      "123",
		Experience: "0",
	}, &dto.UploadedFile{Filename: "../../etc/cv.pdf", Size: 3, Content: []byte("pdf")})
	require.NoError(t, err)

	assert.Equal(t, "Dana", candidate.Name)
	assert.Equal(t, "dana@example.com", candidate.Email)
	assert.Zero(t, candidate.Experience)
	assert.True(t, strings.HasPrefix(candidate.ResumePath, "resumes/"+job.ID+"/"))
	assert.True(t, strings.HasSuffix(candidate.ResumePath, "_cv.pdf"))
	assert.NotContains(t, candidate.ResumePath, "..")
	assert.Zero(t, f.workflow.CallCount())
}

func TestCandidateService_ApplyRejectsNonIntegerExperience(t *testing.T) {
	f := newFixture(t)
	job := testutil.CreateJob(t, f.db, "owner", "QA")

	_, err := f.svc.CandidateService.Apply(context.Background(), f.db, job.ID, &dto.ApplyRequest{
		Name:       "Dana",
		Email:      "dana@example.com",
		Phone:      "123",
		Experience: "",
	}, &dto.UploadedFile{Filename: "cv.pdf", Size: 3, Content: []byte("pdf")})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
	assert.Empty(t, f.storage.Keys())

	var count int64
	require.NoError(t, f.db.Model(&models.Candidate{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestJobService_GenerateDescriptionErrors(t *testing.T) {
	f := newFixture(t)
	js := f.svc.JobService
	req := &dto.GenerateDescriptionRequest{Title: "Go", Requirements: "gin"}

	f.generator.Err = fmt.Errorf("wrapped: %w", aitext.ErrRateLimited)
	_, err := js.GenerateDescription(context.Background(), req)
	assert.Equal(t, apperrors.ErrAIRateLimited.Message, appMessage(t, err))

	f.generator.Err = testutil.ErrFake
	_, err = js.GenerateDescription(context.Background(), req)
	assert.Equal(t, apperrors.ErrAIGenerationFailed.Message, appMessage(t, err))
	assert.Equal(t, http.StatusInternalServerError, httpCode(t, err))

	f.generator.Err = nil
	f.generator.Text = "<p>ready</p>"
	text, err := js.GenerateDescription(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "<p>ready</p>", text)

	cfg := js.AIConfig()
	assert.True(t, cfg.Configured)
	assert.Equal(t, "fake-model", cfg.Model)
}

func TestJobService_UpdateWithoutChanges(t *testing.T) {
	f := newFixture(t)
	job := testutil.CreateJob(t, f.db, "owner", "QA")

	got, err := f.svc.JobService.UpdateJob(context.Background(), f.db, "owner", job.ID, &dto.UpdateJobRequest{})
	require.NoError(t, err)
	assert.Equal(t, "QA", got.Title)

	_, err = f.svc.JobService.UpdateJob(context.Background(), f.db, "intruder", job.ID, &dto.UpdateJobRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)
}

func TestInterviewService_ListOnlyOwnJobs(t *testing.T) {
	f := newFixture(t)
	mine := testutil.CreateJob(t, f.db, "owner", "Mine")
	other := testutil.CreateJob(t, f.db, "other", "Other")
	testutil.CreateInterview(t, f.db, testutil.CreateCandidate(t, f.db, mine.ID, "a"), "owner")
	testutil.CreateInterview(t, f.db, testutil.CreateCandidate(t, f.db, other.ID, "b"), "other")

	list, err := f.svc.InterviewService.ListInterviews(context.Background(), f.db, "owner")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].JobID)

	list, err = f.svc.InterviewService.ListInterviews(context.Background(), f.db, "nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserService_RequestDeletionIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.accounts.Put(identity.UserRecord{UID: "u1", Email: "u1@example.com"})
	us := f.svc.UserService

	first, err := us.RequestDeletion(context.Background(), f.db, "u1")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := us.RequestDeletion(context.Background(), f.db, "u1")
	require.NoError(t, err)

	assert.WithinDuration(t, first.DeletionRequestedAt, second.DeletionRequestedAt, time.Millisecond)
}

func TestUserService_RequestDeletionWithoutIdentityAccount(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.UserService.RequestDeletion(context.Background(), f.db, "gone")
	require.NoError(t, err)
	assert.Equal(t, "gone", resp.UID)

	result, err := f.svc.DeletionService.SweepDeletions(context.Background(), f.db, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Purged)
}

func TestDeletionService_StorageFailureIsRetried(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.accounts.Put(identity.UserRecord{UID: "u1", Email: "u1@example.com"})

	job := testutil.CreateJob(t, f.db, "u1", "QA")
	candidate := testutil.CreateCandidate(t, f.db, job.ID, "alice")
	require.NoError(t, f.storage.Save(ctx, candidate.ResumePath, strings.NewReader("cv"), "application/pdf"))

	_, err := f.svc.UserService.RequestDeletion(ctx, f.db, "u1")
	require.NoError(t, err)

	f.storage.DeleteErr = testutil.ErrFake
	result, err := f.svc.DeletionService.SweepDeletions(ctx, f.db, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Zero(t, result.Purged)

	// Данные и отметка остались
	var jobs int64
	require.NoError(t, f.db.Model(&models.Job{}).Count(&jobs).Error)
	assert.Equal(t, int64(1), jobs)
	assert.True(t, f.accounts.Exists("u1"))

	f.storage.DeleteErr = nil
	result, err = f.svc.DeletionService.SweepDeletions(ctx, f.db, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Purged)

	require.NoError(t, f.db.Model(&models.Job{}).Count(&jobs).Error)
	assert.Zero(t, jobs)
	assert.False(t, f.accounts.Exists("u1"))

	result, err = f.svc.DeletionService.SweepDeletions(ctx, f.db, 10)
	require.NoError(t, err)
	assert.Zero(t, result.Processed)
}

func TestDeletionService_BatchSize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.UserService.RequestDeletion(ctx, f.db, fmt.Sprintf("u%d", i))
		require.NoError(t, err)
	}

	result, err := f.svc.DeletionService.SweepDeletions(ctx, f.db, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)

	result, err = f.svc.DeletionService.SweepDeletions(ctx, f.db, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}
