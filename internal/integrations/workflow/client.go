package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

// CandidateApplied - данные о новом отклике для сценария автоматизации
type CandidateApplied struct {
	CandidateID    string `json:"candidateId"`
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail"`
	CandidatePhone string `json:"candidatePhone"`
	JobID          string `json:"jobId"`
	JobTitle       string `json:"jobTitle"`
	ResumeURL      string `json:"resumeUrl"`
	ResumeText     string `json:"resumeText,omitempty"`
}

type payload struct {
	CandidateApplied
	Secret    string `json:"secret,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Trigger запускает внешний сценарий обработки кандидата
type Trigger interface {
	Enabled() bool
	TriggerCandidateWorkflow(ctx context.Context, data CandidateApplied) error
}

type Config struct {
	WebhookURL    string
	WebhookSecret string
	Timeout       time.Duration
}

type Client struct {
	url    string
	secret string
	http   *http.Client
	now    func() time.Time
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:    cfg.WebhookURL,
		secret: cfg.WebhookSecret,
		http:   &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

// Enabled - настроен ли адрес вебхука
func (c *Client) Enabled() bool {
	return c != nil && c.url != ""
}

func (c *Client) TriggerCandidateWorkflow(ctx context.Context, data CandidateApplied) error {
	if !c.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload{
		CandidateApplied: data,
		Secret:           c.secret,
		Timestamp:        c.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to encode workflow payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build workflow request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("workflow request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("workflow webhook returned %d", resp.StatusCode)
	}
	return nil
}
