package workflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerCandidateWorkflow(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{WebhookURL: srv.URL, WebhookSecret: "wf-secret"})
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	err := c.TriggerCandidateWorkflow(context.Background(), CandidateApplied{
		CandidateID:    "c1",
		CandidateName:  "Ada",
		CandidateEmail: "ada@example.com",
		CandidatePhone: "+100",
		JobID:          "j1",
		JobTitle:       "Engineer",
		ResumeURL:      "https://files/resumes/j1/1_cv.pdf",
		ResumeText:     "Go, SQL",
	})
	require.NoError(t, err)

	assert.Equal(t, "c1", got["candidateId"])
	assert.Equal(t, "Engineer", got["jobTitle"])
	assert.Equal(t, "Go, SQL", got["resumeText"])
	assert.Equal(t, "wf-secret", got["secret"])
	assert.Equal(t, "2026-01-02T03:04:05Z", got["timestamp"])
}

func TestTriggerCandidateWorkflow_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(Config{WebhookURL: srv.URL}).TriggerCandidateWorkflow(context.Background(), CandidateApplied{})
	assert.Error(t, err)
}

func TestTriggerCandidateWorkflow_Disabled(t *testing.T) {
	c := NewClient(Config{})
	assert.False(t, c.Enabled())
	assert.NoError(t, c.TriggerCandidateWorkflow(context.Background(), CandidateApplied{CandidateID: "c1"}))
}
