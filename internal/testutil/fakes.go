package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"hr_portal_backend/internal/email"
	"hr_portal_backend/internal/integrations/aitext"
	"hr_portal_backend/internal/integrations/meeting"
	"hr_portal_backend/internal/integrations/workflow"
)

// MemoryStorage - хранилище объектов в памяти
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	// SaveErr / DeleteErr - принудительные ошибки
	SaveErr   error
	DeleteErr error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func (s *MemoryStorage) Save(_ context.Context, key string, reader io.Reader, _ string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStorage) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *MemoryStorage) URL(key string) string {
	return "https://storage.test/" + key
}

// Keys - все сохраненные ключи
func (s *MemoryStorage) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	return keys
}

func (s *MemoryStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return bytes.Clone(data), ok
}

// FakeWorkflow запоминает вызовы сценария
type FakeWorkflow struct {
	mu       sync.Mutex
	Disabled bool
	Err      error
	Calls    []workflow.CandidateApplied
}

func (w *FakeWorkflow) Enabled() bool { return !w.Disabled }

func (w *FakeWorkflow) TriggerCandidateWorkflow(_ context.Context, data workflow.CandidateApplied) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Calls = append(w.Calls, data)
	return w.Err
}

func (w *FakeWorkflow) CallCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.Calls)
}

// FakeMeetings возвращает предсказуемые ссылки
type FakeMeetings struct {
	mu            sync.Mutex
	Err           error
	TranscriptErr error
	Requests      []meeting.CreateRequest
}

func (m *FakeMeetings) CreateMeeting(_ context.Context, req meeting.CreateRequest) (*meeting.Meeting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	m.Requests = append(m.Requests, req)
	id := fmt.Sprintf("meeting-%d", len(m.Requests))
	return &meeting.Meeting{
		ID:        id,
		JoinURL:   "https://meet.test/" + id,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}, nil
}

func (m *FakeMeetings) GetTranscript(_ context.Context, meetingID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TranscriptErr != nil {
		return "", m.TranscriptErr
	}
	return "transcript of " + meetingID, nil
}

// FakeMailer запоминает отправленные приглашения
type FakeMailer struct {
	mu          sync.Mutex
	Err         error
	Invitations []email.Invitation
}

func (m *FakeMailer) SendInterviewInvitation(_ context.Context, inv email.Invitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Invitations = append(m.Invitations, inv)
	return nil
}

func (m *FakeMailer) Sent() []email.Invitation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Invitation(nil), m.Invitations...)
}

// FakeGenerator - генератор описаний без сети
type FakeGenerator struct {
	Text         string
	Err          error
	Unconfigured bool
}

func (g *FakeGenerator) GenerateJobDescription(_ context.Context, title, _ string) (string, error) {
	if g.Unconfigured {
		return "", aitext.ErrNotConfigured
	}
	if g.Err != nil {
		return "", g.Err
	}
	if g.Text != "" {
		return g.Text, nil
	}
	return "<h2>" + title + "</h2>", nil
}

func (g *FakeGenerator) Configured() bool { return !g.Unconfigured }

func (g *FakeGenerator) Model() string { return "fake-model" }

// FakeExtractor возвращает заданный текст
type FakeExtractor struct {
	Text string
	Err  error
}

func (e *FakeExtractor) Extract(_ context.Context, _ string, _ []byte) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.Text, nil
}

var ErrFake = errors.New("fake failure")
