package meeting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hr_portal_backend/internal/logger"
)

var ErrMeetingFailed = errors.New("failed to create meeting")

const (
	DefaultDuration = 60 // минут
	placeholderTTL  = 7 * 24 * time.Hour
)

// Participant - участник видеовстречи
type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateRequest struct {
	CandidateName  string
	CandidateEmail string
	JobTitle       string
}

// Meeting - созданная встреча
type Meeting struct {
	ID        string    `json:"id"`
	JoinURL   string    `json:"joinUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Creator создает ссылки на AI-интервью
type Creator interface {
	CreateMeeting(ctx context.Context, req CreateRequest) (*Meeting, error)
	GetTranscript(ctx context.Context, meetingID string) (string, error)
}

type Config struct {
	APIKey string
	APIURL string
	// AllowPlaceholder - при ошибке API вернуть заглушку (не production)
	AllowPlaceholder bool
	Timeout          time.Duration
}

type Client struct {
	apiKey           string
	apiURL           string
	allowPlaceholder bool
	http             *http.Client
	now              func() time.Time
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:           cfg.APIKey,
		apiURL:           strings.TrimRight(cfg.APIURL, "/"),
		allowPlaceholder: cfg.AllowPlaceholder,
		http:             &http.Client{Timeout: timeout},
		now:              time.Now,
	}
}

type createBody struct {
	Title        string        `json:"title"`
	Participants []Participant `json:"participants"`
	Duration     int           `json:"duration"`
	Settings     struct {
		RecordingEnabled     bool `json:"recordingEnabled"`
		TranscriptionEnabled bool `json:"transcriptionEnabled"`
	} `json:"settings"`
}

func (c *Client) CreateMeeting(ctx context.Context, req CreateRequest) (*Meeting, error) {
	m, err := c.createMeeting(ctx, req)
	if err == nil {
		logger.CtxInfo(ctx, "Meeting created", "meeting_id", m.ID)
		return m, nil
	}

	logger.CtxWithError(ctx, "Meeting provider call failed", err)
	if !c.allowPlaceholder {
		return nil, fmt.Errorf("%w: %v", ErrMeetingFailed, err)
	}

	now := c.now()
	logger.CtxWarn(ctx, "Using placeholder meeting link")
	return &Meeting{
		ID:        fmt.Sprintf("mock-%d", now.UnixMilli()),
		JoinURL:   fmt.Sprintf("https://meet.example.com/interview/%d", now.UnixMilli()),
		ExpiresAt: now.Add(placeholderTTL).UTC(),
	}, nil
}

func (c *Client) createMeeting(ctx context.Context, req CreateRequest) (*Meeting, error) {
	if c.apiURL == "" || c.apiKey == "" {
		return nil, errors.New("meeting provider is not configured")
	}

	body := createBody{
		Title:        "Interview for " + req.JobTitle,
		Participants: []Participant{{Name: req.CandidateName, Email: req.CandidateEmail}},
		Duration:     DefaultDuration,
	}
	body.Settings.RecordingEnabled = true
	body.Settings.TranscriptionEnabled = true

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/meetings", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var m Meeting
	if err := c.do(httpReq, &m); err != nil {
		return nil, err
	}
	if m.JoinURL == "" {
		return nil, errors.New("meeting provider returned no join url")
	}
	return &m, nil
}

// GetTranscript возвращает расшифровку встречи
func (c *Client) GetTranscript(ctx context.Context, meetingID string) (string, error) {
	if c.apiURL == "" || c.apiKey == "" {
		return "", errors.New("meeting provider is not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+"/meetings/"+url.PathEscape(meetingID)+"/transcript", nil)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var out struct {
		Transcript string `json:"transcript"`
	}
	if err := c.do(httpReq, &out); err != nil {
		return "", fmt.Errorf("failed to retrieve transcript: %w", err)
	}
	return out.Transcript, nil
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("meeting provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode meeting provider response: %w", err)
	}
	return nil
}
