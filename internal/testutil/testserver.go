package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr_portal_backend/internal/app"
	"hr_portal_backend/internal/config"
	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/models"
	"hr_portal_backend/internal/services"
	"hr_portal_backend/pkg/apperrors"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	DevSecret     = "test-dev-secret"
	WebhookSecret = "test-webhook-secret"
)

// TestServer - роутер приложения на SQLite и фейковых клиентах
type TestServer struct {
	Server    *httptest.Server
	DB        *gorm.DB
	Config    *config.Config
	Services  *services.ServiceContainer
	Storage   *MemoryStorage
	Accounts  *identity.MemoryAccountManager
	Workflow  *FakeWorkflow
	Meetings  *FakeMeetings
	Mailer    *FakeMailer
	Generator *FakeGenerator
}

// TestConfig - конфиг test-окружения с HS256-токенами
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = config.EnvTest
	cfg.Database.Driver = "sqlite"
	cfg.Identity.DevSecret = DevSecret
	cfg.Webhook.Secret = WebhookSecret
	return cfg
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	logger.InitWithWriter(config.EnvTest, io.Discard)
	apperrors.SetDebug(true)

	cfg := TestConfig()
	db := NewTestDB(t)

	verifier, err := identity.NewJWTVerifier(identity.VerifierConfig{DevSecret: DevSecret}, nil)
	require.NoError(t, err)

	ts := &TestServer{
		DB:        db,
		Config:    cfg,
		Storage:   NewMemoryStorage(),
		Accounts:  identity.NewMemoryAccountManager(),
		Workflow:  &FakeWorkflow{},
		Meetings:  &FakeMeetings{},
		Mailer:    &FakeMailer{},
		Generator: &FakeGenerator{},
	}

	ts.Services = services.NewServiceContainer(services.Dependencies{
		Storage:      ts.Storage,
		Accounts:     ts.Accounts,
		Mailer:       ts.Mailer,
		Generator:    ts.Generator,
		Meetings:     ts.Meetings,
		Workflow:     ts.Workflow,
		Extractor:    &FakeExtractor{Text: "resume text"},
		ResumePolicy: services.DefaultResumePolicy(),
	})

	router := app.SetupRouter(cfg, app.RouterDeps{
		DB:       db,
		Services: ts.Services,
		Verifier: verifier,
		Storage:  ts.Storage,
	})
	ts.Server = httptest.NewServer(router)
	t.Cleanup(ts.Server.Close)

	return ts
}

// Token выпускает dev-токен и заводит учетную запись у провайдера
func (ts *TestServer) Token(t *testing.T, uid, email string) string {
	t.Helper()
	ts.Accounts.Put(identity.UserRecord{UID: uid, Email: email, DisplayName: uid})
	return MustToken(t, uid, email)
}

func MustToken(t *testing.T, uid, email string) string {
	t.Helper()
	token, err := identity.IssueDevToken(DevSecret, uid, email, time.Hour)
	require.NoError(t, err)
	return token
}

// SendRequest отправляет JSON-запрос; body == nil - без тела
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(body)
			require.NoError(t, err, "ошибка кодирования JSON")
			reqBody = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// Upload - файл для multipart-запроса
type Upload struct {
	Field    string
	Filename string
	Content  []byte
}

// SendMultipart отправляет multipart/form-data
func (ts *TestServer) SendMultipart(t *testing.T, path, token string, fields map[string]string, files ...Upload) (*http.Response, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

// Envelope - разобранный ответ {success, message, data, errors}
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
	Details string            `json:"details"`
}

func DecodeEnvelope(t *testing.T, body string) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env), "тело ответа: %s", body)
	return env
}

// DecodeData разбирает поле data в dst
func DecodeData(t *testing.T, body string, dst interface{}) {
	t.Helper()
	env := DecodeEnvelope(t, body)
	require.NoError(t, json.Unmarshal(env.Data, dst), "data: %s", string(env.Data))
}

// --- Фикстуры ---

func CreateJob(t *testing.T, db *gorm.DB, ownerID, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Description: "<p>" + title + "</p>",
		CreatedBy:   ownerID,
		Status:      models.JobStatusActive,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func CreateCandidate(t *testing.T, db *gorm.DB, jobID, name string) *models.Candidate {
	t.Helper()
	candidate := &models.Candidate{
		JobID:      jobID,
		Name:       name,
		Email:      fmt.Sprintf("%s@example.com", name),
		Phone:      "+7 700 000 00 00",
		Experience: 3,
		ResumePath: fmt.Sprintf("resumes/%s/1_%s.pdf", jobID, name),
		ResumeURL:  fmt.Sprintf("https://storage.test/resumes/%s/1_%s.pdf", jobID, name),
		Status:     models.CandidateStatusApplied,
	}
	require.NoError(t, db.Create(candidate).Error)
	return candidate
}

func CreateInterview(t *testing.T, db *gorm.DB, candidate *models.Candidate, ownerID string) *models.Interview {
	t.Helper()
	interview := &models.Interview{
		CandidateID:   candidate.ID,
		JobID:         candidate.JobID,
		CreatedBy:     ownerID,
		ScheduledTime: time.Now().Add(24 * time.Hour).UTC(),
		Duration:      models.DefaultInterviewDuration,
		Status:        models.InterviewStatusScheduled,
	}
	require.NoError(t, db.Create(interview).Error)
	return interview
}
