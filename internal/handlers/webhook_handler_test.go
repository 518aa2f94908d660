package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"hr_portal_backend/internal/middleware"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendWebhook(t *testing.T, ts *testutil.TestServer, secretHeader string, payload interface{}) (*http.Response, string) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/webhooks/update-interview", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if secretHeader != "" {
		req.Header.Set(middleware.WebhookSecretHeader, secretHeader)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestWebhook_SecretCheck(t *testing.T) {
	ts := testutil.NewTestServer(t)
	candidate := testutil.CreateCandidate(t, ts.DB, "job-1", "alice")
	payload := map[string]string{"candidateId": candidate.ID, "status": "Report Ready"}

	res, body := sendWebhook(t, ts, "", payload)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "Forbidden: Invalid webhook secret", testutil.DecodeEnvelope(t, body).Message)

	res, _ = sendWebhook(t, ts, "wrong", payload)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = sendWebhook(t, ts, "", map[string]string{"candidateId": candidate.ID, "secret": "wrong"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var stored models.Candidate
	require.NoError(t, ts.DB.First(&stored, "id = ?", candidate.ID).Error)
	assert.Equal(t, models.CandidateStatusApplied, stored.Status)
}

func TestWebhook_Errors(t *testing.T) {
	ts := testutil.NewTestServer(t)

	res, body := sendWebhook(t, ts, testutil.WebhookSecret, map[string]string{"status": "Report Ready"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Candidate ID is required", testutil.DecodeEnvelope(t, body).Message)

	res, body = sendWebhook(t, ts, testutil.WebhookSecret, map[string]string{"candidateId": "missing"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Candidate not found", testutil.DecodeEnvelope(t, body).Message)
}

func TestWebhook_UpdatesCandidate(t *testing.T) {
	ts := testutil.NewTestServer(t)
	candidate := testutil.CreateCandidate(t, ts.DB, "job-1", "alice")

	res, body := sendWebhook(t, ts, "", map[string]interface{}{
		"secret":          testutil.WebhookSecret,
		"candidateId":     candidate.ID,
		"interviewLink":   "https://meet.test/room",
		"status":          "Report Ready",
		"interviewReport": map[string]interface{}{"score": 7, "notes": "ok"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "Interview data updated successfully", testutil.DecodeEnvelope(t, body).Message)

	var stored models.Candidate
	require.NoError(t, ts.DB.First(&stored, "id = ?", candidate.ID).Error)
	assert.Equal(t, models.CandidateStatusReportReady, stored.Status)
	require.NotNil(t, stored.InterviewLink)
	assert.Equal(t, "https://meet.test/room", *stored.InterviewLink)
	assert.JSONEq(t, `{"score":7,"notes":"ok"}`, string(stored.InterviewReport))

	// Ложные значения не затирают сохраненные данные
	res, body = sendWebhook(t, ts, testutil.WebhookSecret, map[string]interface{}{
		"candidateId":     candidate.ID,
		"status":          "",
		"interviewReport": nil,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	stored = models.Candidate{}
	require.NoError(t, ts.DB.First(&stored, "id = ?", candidate.ID).Error)
	assert.Equal(t, models.CandidateStatusReportReady, stored.Status)
	assert.JSONEq(t, `{"score":7,"notes":"ok"}`, string(stored.InterviewReport))

	// Пустой объект - это значение
	res, body = sendWebhook(t, ts, testutil.WebhookSecret, map[string]interface{}{
		"candidateId":     candidate.ID,
		"interviewReport": map[string]interface{}{},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	stored = models.Candidate{}
	require.NoError(t, ts.DB.First(&stored, "id = ?", candidate.ID).Error)
	assert.JSONEq(t, `{}`, string(stored.InterviewReport))
}
