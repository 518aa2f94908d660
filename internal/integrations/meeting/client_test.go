package meeting

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

func TestCreateMeeting(t *testing.T) {
	var body createBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/meetings", r.URL.Path)
		assert.Equal(t, "Bearer bp-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":"m-1","joinUrl":"https://bp.example/join/m-1","expiresAt":"2026-05-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bp-key", APIURL: srv.URL + "/v1/"})
	m, err := c.CreateMeeting(context.Background(), CreateRequest{
		CandidateName:  "Ada",
		CandidateEmail: "ada@example.com",
		JobTitle:       "Engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, "m-1", m.ID)
	assert.Equal(t, "https://bp.example/join/m-1", m.JoinURL)
	assert.Equal(t, "Interview for Engineer", body.Title)
	assert.Equal(t, []Participant{{Name: "Ada", Email: "ada@example.com"}}, body.Participants)
	assert.Equal(t, 60, body.Duration)
	assert.True(t, body.Settings.RecordingEnabled)
	assert.True(t, body.Settings.TranscriptionEnabled)
}

func TestCreateMeeting_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("placeholder outside production", func(t *testing.T) {
		c := NewClient(Config{APIKey: "k", APIURL: srv.URL, AllowPlaceholder: true})
		c.now = func() time.Time { return now }

		m, err := c.CreateMeeting(context.Background(), CreateRequest{JobTitle: "X"})
		require.NoError(t, err)
		assert.Equal(t, "https://meet.example.com/interview/1772366400000", m.JoinURL)
		assert.Equal(t, now.Add(7*24*time.Hour), m.ExpiresAt)
	})

	t.Run("error in production", func(t *testing.T) {
		c := NewClient(Config{APIKey: "k", APIURL: srv.URL})
		_, err := c.CreateMeeting(context.Background(), CreateRequest{JobTitle: "X"})
		assert.ErrorIs(t, err, ErrMeetingFailed)
	})
}

func TestGetTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meetings/m-1/transcript", r.URL.Path)
		_, _ = w.Write([]byte(`{"transcript":"Hello there"}`))
	}))
	defer srv.Close()

	text, err := NewClient(Config{APIKey: "k", APIURL: srv.URL}).GetTranscript(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)
}
