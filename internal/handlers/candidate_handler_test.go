package handlers_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/services/dto"
	"hr_portal_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyFields() map[string]string {
	return map[string]string{
		"name":       "Aigerim",
		"email":      "  Aigerim@Example.COM ",
		"phone":      "+7 701 000 00 00",
		"experience": "3",
	}
}

func resumeUpload(filename string, size int) testutil.Upload {
	return testutil.Upload{
		Field:    "resume",
		Filename: filename,
		Content:  bytes.Repeat([]byte("%"), size),
	}
}

func countCandidates(t *testing.T, ts *testutil.TestServer) int64 {
	t.Helper()
	var count int64
	require.NoError(t, ts.DB.Model(&models.Candidate{}).Count(&count).Error)
	return count
}

func TestApply_Success(t *testing.T) {
	ts := testutil.NewTestServer(t)
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")

	res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", applyFields(), resumeUpload("My CV.pdf", 2048))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	env := testutil.DecodeEnvelope(t, body)
	assert.True(t, env.Success)
	assert.Equal(t, "Application submitted successfully", env.Message)

	var out dto.ApplyResponse
	testutil.DecodeData(t, body, &out)
	require.NotEmpty(t, out.CandidateID)

	var candidate models.Candidate
	require.NoError(t, ts.DB.First(&candidate, "id = ?", out.CandidateID).Error)
	assert.Equal(t, job.ID, candidate.JobID)
	assert.Equal(t, "aigerim@example.com", candidate.Email)
	assert.Equal(t, 3, candidate.Experience)
	assert.Equal(t, models.CandidateStatusApplied, candidate.Status)
	assert.Nil(t, candidate.InterviewLink)
	assert.True(t, strings.HasPrefix(candidate.ResumePath, "resumes/"+job.ID+"/"))
	assert.True(t, strings.HasSuffix(candidate.ResumePath, "_My_CV.pdf"))
	assert.Equal(t, "https://storage.test/"+candidate.ResumePath, candidate.ResumeURL)

	stored, ok := ts.Storage.Object(candidate.ResumePath)
	require.True(t, ok)
	assert.Len(t, stored, 2048)

	require.Equal(t, 1, ts.Workflow.CallCount())
	call := ts.Workflow.Calls[0]
	assert.Equal(t, candidate.ID, call.CandidateID)
	assert.Equal(t, "Backend Engineer", call.JobTitle)
	assert.Equal(t, "resume text", call.ResumeText)
}

func TestApply_TrimsFormFields(t *testing.T) {
	ts := testutil.NewTestServer(t)
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")

	fields := map[string]string{
		"name":       "  Aigerim  ",
		"email":      "\taigerim@example.com ",
		"phone":      " +7 701 000 00 00 ",
		"experience": " 4 ",
	}
	res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", fields, resumeUpload("cv.pdf", 10))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var out dto.ApplyResponse
	testutil.DecodeData(t, body, &out)

	var candidate models.Candidate
	require.NoError(t, ts.DB.First(&candidate, "id = ?", out.CandidateID).Error)
	assert.Equal(t, "Aigerim", candidate.Name)
	assert.Equal(t, "aigerim@example.com", candidate.Email)
	assert.Equal(t, "+7 701 000 00 00", candidate.Phone)
	assert.Equal(t, 4, candidate.Experience)
}

func TestApply_WorkflowFailureDoesNotFailApplication(t *testing.T) {
	ts := testutil.NewTestServer(t)
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")
	ts.Workflow.Err = testutil.ErrFake

	res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", applyFields(), resumeUpload("cv.docx", 100))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Equal(t, int64(1), countCandidates(t, ts))
	assert.Equal(t, 1, ts.Workflow.CallCount())
}

func TestApply_Rejections(t *testing.T) {
	ts := testutil.NewTestServer(t)
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")

	t.Run("file too large", func(t *testing.T) {
		res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", applyFields(), resumeUpload("cv.pdf", 6*1024*1024))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "File size exceeds the allowed limit", testutil.DecodeEnvelope(t, body).Message)
	})

	t.Run("wrong extension", func(t *testing.T) {
		res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", applyFields(), resumeUpload("cv.txt", 100))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "Invalid file type. Only PDF and DOC files are allowed.", testutil.DecodeEnvelope(t, body).Message)
	})

	t.Run("missing resume", func(t *testing.T) {
		res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", applyFields())
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "Resume file is required", testutil.DecodeEnvelope(t, body).Message)
	})

	t.Run("negative experience", func(t *testing.T) {
		fields := applyFields()
		fields["experience"] = "-1"
		res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", fields, resumeUpload("cv.pdf", 100))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, testutil.DecodeEnvelope(t, body).Errors, "experience")
	})

	t.Run("fractional experience", func(t *testing.T) {
		fields := applyFields()
		fields["experience"] = "2.5"
		res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", fields, resumeUpload("cv.pdf", 100))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "Must be a non-negative integer", testutil.DecodeEnvelope(t, body).Errors["experience"])
	})

	for name, value := range map[string]string{"empty experience": "", "blank experience": "   ", "text experience": "three"} {
		t.Run(name, func(t *testing.T) {
			fields := applyFields()
			fields["experience"] = value
			res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", fields, resumeUpload("cv.pdf", 100))
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
			assert.Contains(t, testutil.DecodeEnvelope(t, body).Errors, "experience")
			assert.Zero(t, countCandidates(t, ts))
		})
	}

	t.Run("invalid email", func(t *testing.T) {
		fields := applyFields()
		fields["email"] = "not-an-email"
		res, body := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", fields, resumeUpload("cv.pdf", 100))
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, testutil.DecodeEnvelope(t, body).Errors, "email")
	})

	t.Run("unknown job", func(t *testing.T) {
		res, body := ts.SendMultipart(t, "/api/candidates/apply/no-such-job", "", applyFields(), resumeUpload("cv.pdf", 100))
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "Job not found", testutil.DecodeEnvelope(t, body).Message)
		assert.Zero(t, countCandidates(t, ts))
		assert.Empty(t, ts.Storage.Keys())
		assert.Zero(t, ts.Workflow.CallCount())
	})

	assert.Zero(t, countCandidates(t, ts))
	assert.Empty(t, ts.Storage.Keys())
	assert.Zero(t, ts.Workflow.CallCount())
}

func TestApply_StorageFailure(t *testing.T) {
	ts := testutil.NewTestServer(t)
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")
	ts.Storage.SaveErr = testutil.ErrFake

	res, _ := ts.SendMultipart(t, "/api/candidates/apply/"+job.ID, "", applyFields(), resumeUpload("cv.pdf", 100))
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Zero(t, countCandidates(t, ts))
}

func TestCandidates_ListAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner := ts.Token(t, "owner", "owner@example.com")
	stranger := ts.Token(t, "stranger", "stranger@example.com")

	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")
	first := testutil.CreateCandidate(t, ts.DB, job.ID, "alice")
	testutil.CreateCandidate(t, ts.DB, job.ID, "bob")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/candidates/job/"+job.ID, owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var list []models.Candidate
	testutil.DecodeData(t, body, &list)
	assert.Len(t, list, 2)
	assert.NotContains(t, body, "resumePath")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/candidates/"+first.ID, owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var got models.Candidate
	testutil.DecodeData(t, body, &got)
	assert.Equal(t, "alice", got.Name)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/candidates/"+first.ID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/candidates/missing", owner, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/candidates/job/missing", owner, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCandidates_OrphanedCandidateIsForbidden(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner := ts.Token(t, "owner", "owner@example.com")

	orphan := testutil.CreateCandidate(t, ts.DB, "deleted-job", "ghost")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/candidates/"+orphan.ID, owner, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "Access denied", testutil.DecodeEnvelope(t, body).Message)
}

func TestCandidates_ScheduleAIInterview(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner := ts.Token(t, "owner", "owner@example.com")
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")
	candidate := testutil.CreateCandidate(t, ts.DB, job.ID, "alice")

	path := "/api/candidates/" + candidate.ID + "/schedule-ai-interview"

	res, body := ts.SendRequest(t, http.MethodPost, path, owner, map[string]string{"interviewDate": "2026-11-01"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, testutil.DecodeEnvelope(t, body).Errors, "interviewTime")

	res, body = ts.SendRequest(t, http.MethodPost, path, owner, map[string]string{
		"interviewDate": "2026-11-01",
		"interviewTime": "10:30",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "AI interview scheduled successfully", testutil.DecodeEnvelope(t, body).Message)

	var updated models.Candidate
	testutil.DecodeData(t, body, &updated)
	assert.Equal(t, models.CandidateStatusInterviewScheduled, updated.Status)
	require.NotNil(t, updated.InterviewLink)
	assert.Equal(t, "https://meet.test/meeting-1", *updated.InterviewLink)
	require.NotNil(t, updated.InterviewType)
	assert.Equal(t, models.InterviewTypeAI, *updated.InterviewType)
	require.NotNil(t, updated.InterviewDate)
	assert.Equal(t, "2026-11-01", *updated.InterviewDate)

	sent := ts.Mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "alice@example.com", sent[0].CandidateEmail)
	assert.Equal(t, "https://meet.test/meeting-1", sent[0].InterviewLink)
	assert.Equal(t, "10:30", sent[0].InterviewTime)
}

func TestCandidates_InterviewTranscript(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner := ts.Token(t, "owner", "owner@example.com")
	stranger := ts.Token(t, "stranger", "stranger@example.com")
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")
	candidate := testutil.CreateCandidate(t, ts.DB, job.ID, "alice")
	path := "/api/candidates/" + candidate.ID + "/transcript"

	// Без AI-интервью расшифровки нет
	res, body := ts.SendRequest(t, http.MethodGet, path, owner, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "No AI interview meeting for this candidate", testutil.DecodeEnvelope(t, body).Message)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/candidates/"+candidate.ID+"/schedule-ai-interview", owner, map[string]string{
		"interviewDate": "2026-11-01",
		"interviewTime": "10:30",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, "meetingId")

	res, body = ts.SendRequest(t, http.MethodGet, path, owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var out dto.TranscriptResponse
	testutil.DecodeData(t, body, &out)
	assert.Equal(t, "meeting-1", out.MeetingID)
	assert.Equal(t, "transcript of meeting-1", out.Transcript)

	res, _ = ts.SendRequest(t, http.MethodGet, path, stranger, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	ts.Meetings.TranscriptErr = testutil.ErrFake
	res, _ = ts.SendRequest(t, http.MethodGet, path, owner, nil)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	ts.Meetings.TranscriptErr = nil

	// Ручное интервью сбрасывает встречу
	res, body = ts.SendRequest(t, http.MethodPost, "/api/candidates/"+candidate.ID+"/schedule-manual-interview", owner, map[string]string{
		"calendlyLink": "https://calendly.com/acme/30min",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet, path, owner, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCandidates_ScheduleManualInterview(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner := ts.Token(t, "owner", "owner@example.com")
	stranger := ts.Token(t, "stranger", "stranger@example.com")
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")
	candidate := testutil.CreateCandidate(t, ts.DB, job.ID, "alice")

	path := "/api/candidates/" + candidate.ID + "/schedule-manual-interview"

	res, body := ts.SendRequest(t, http.MethodPost, path, owner, map[string]string{"calendlyLink": "https://example.com/slot"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, testutil.DecodeEnvelope(t, body).Errors, "calendlyLink")

	res, _ = ts.SendRequest(t, http.MethodPost, path, stranger, map[string]string{"calendlyLink": "https://calendly.com/hr/30min"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Empty(t, ts.Mailer.Sent())

	res, body = ts.SendRequest(t, http.MethodPost, path, owner, map[string]string{"calendlyLink": "https://calendly.com/hr/30min"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "Manual interview scheduled successfully", testutil.DecodeEnvelope(t, body).Message)

	var updated models.Candidate
	testutil.DecodeData(t, body, &updated)
	require.NotNil(t, updated.InterviewLink)
	assert.Equal(t, "https://calendly.com/hr/30min", *updated.InterviewLink)
	require.NotNil(t, updated.InterviewType)
	assert.Equal(t, models.InterviewTypeManual, *updated.InterviewType)
	assert.Nil(t, updated.InterviewDate)

	require.Len(t, ts.Mailer.Sent(), 1)
	assert.Empty(t, ts.Meetings.Requests)
}

func TestCandidates_ScheduleEmailFailureKeepsLink(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner := ts.Token(t, "owner", "owner@example.com")
	job := testutil.CreateJob(t, ts.DB, "owner", "Backend Engineer")
	candidate := testutil.CreateCandidate(t, ts.DB, job.ID, "alice")
	ts.Mailer.Err = testutil.ErrFake

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/candidates/"+candidate.ID+"/schedule-manual-interview", owner,
		map[string]string{"calendlyLink": "https://calendly.com/hr/30min"})
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var stored models.Candidate
	require.NoError(t, ts.DB.First(&stored, "id = ?", candidate.ID).Error)
	require.NotNil(t, stored.InterviewLink)
	assert.Equal(t, "https://calendly.com/hr/30min", *stored.InterviewLink)
	assert.Equal(t, models.CandidateStatusInterviewScheduled, stored.Status)
}

func TestCandidates_DashboardStats(t *testing.T) {
	ts := testutil.NewTestServer(t)
	owner := ts.Token(t, "owner", "owner@example.com")

	jobA := testutil.CreateJob(t, ts.DB, "owner", "A")
	jobB := testutil.CreateJob(t, ts.DB, "owner", "B")
	foreign := testutil.CreateJob(t, ts.DB, "someone-else", "C")

	testutil.CreateCandidate(t, ts.DB, jobA.ID, "a1")
	done := testutil.CreateCandidate(t, ts.DB, jobA.ID, "a2")
	ready := testutil.CreateCandidate(t, ts.DB, jobB.ID, "b1")
	testutil.CreateCandidate(t, ts.DB, foreign.ID, "c1")

	require.NoError(t, ts.DB.Model(done).Update("status", models.CandidateStatusInterviewCompleted).Error)
	require.NoError(t, ts.DB.Model(ready).Update("status", models.CandidateStatusReportReady).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/candidates/dashboard/stats", owner, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats dto.DashboardStats
	testutil.DecodeData(t, body, &stats)
	assert.Equal(t, int64(2), stats.TotalJobs)
	assert.Equal(t, int64(3), stats.TotalCandidates)
	assert.Equal(t, int64(2), stats.InterviewsCompleted)

	empty := ts.Token(t, "newcomer", "new@example.com")
	res, body = ts.SendRequest(t, http.MethodGet, "/api/candidates/dashboard/stats", empty, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	testutil.DecodeData(t, body, &stats)
	assert.Zero(t, stats.TotalJobs)
	assert.Zero(t, stats.TotalCandidates)
}
