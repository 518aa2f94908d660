package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	Server struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		Env         string `yaml:"env"`
		FrontendURL string `yaml:"frontend_url"`
		BackendURL  string `yaml:"backend_url"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql, sqlite
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	Identity struct {
		ProjectID       string `yaml:"project_id"`
		CredentialsFile string `yaml:"credentials_file"`
		CertsURL        string `yaml:"certs_url"`
		APIEndpoint     string `yaml:"api_endpoint"`
		DevSecret       string `yaml:"dev_secret"` // HS256-токены для dev/test
	} `yaml:"identity"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`   // For local storage
		BaseURL    string `yaml:"base_url"`    // Public URL base
		Bucket     string `yaml:"bucket"`      // For S3/R2
		Region     string `yaml:"region"`      // For S3
		AccessKey  string `yaml:"access_key"`  // For S3/R2
		SecretKey  string `yaml:"secret_key"`  // For S3/R2
		Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
		PublicRead bool   `yaml:"public_read"` // Make files public
	} `yaml:"storage"`

	Upload struct {
		MaxResumeSize int64    `yaml:"max_resume_size"`
		ResumeExts    []string `yaml:"resume_extensions"`
		MaxPhotoSize  int64    `yaml:"max_photo_size"`
		ImageQuality  int      `yaml:"image_quality"`
	} `yaml:"upload"`

	AI struct {
		GeminiAPIKey string `yaml:"gemini_api_key"`
		Model        string `yaml:"model"`
	} `yaml:"ai"`

	Meeting struct {
		APIKey string `yaml:"api_key"`
		APIURL string `yaml:"api_url"`
	} `yaml:"meeting"`

	Workflow struct {
		WebhookURL    string `yaml:"webhook_url"`
		WebhookSecret string `yaml:"webhook_secret"`
		Timeout       int    `yaml:"timeout_seconds"`
	} `yaml:"workflow"`

	Webhook struct {
		Secret string `yaml:"secret"`
	} `yaml:"webhook"`

	Redis struct {
		URL            string `yaml:"url"`
		ApplyPerMinute int    `yaml:"apply_per_minute"`
		AIPerMinute    int    `yaml:"ai_per_minute"`
	} `yaml:"redis"`

	Workers struct {
		DeletionSweepInterval time.Duration `yaml:"deletion_sweep_interval"`
		DeletionBatchSize     int           `yaml:"deletion_batch_size"`
	} `yaml:"workers"`
}

// IsProduction - true только для env=production
func (c *Config) IsProduction() bool {
	return c.Server.Env == EnvProduction
}

// Default возвращает конфиг со значениями по умолчанию
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 5000
	cfg.Server.Env = EnvDevelopment
	cfg.Server.FrontendURL = "http://localhost:3000"
	cfg.Server.BackendURL = "http://localhost:5000"

	cfg.Database.Driver = "postgres"

	cfg.Identity.CertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

	cfg.Email.SMTPHost = "smtp.gmail.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "HR Interview Portal"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/uploads"

	cfg.Upload.MaxResumeSize = 5 * 1024 * 1024 // 5MB
	cfg.Upload.ResumeExts = []string{".pdf", ".doc", ".docx"}
	cfg.Upload.MaxPhotoSize = 5 * 1024 * 1024
	cfg.Upload.ImageQuality = 85

	cfg.AI.Model = "gemini-2.5-flash"

	cfg.Meeting.APIURL = "https://api.beyondpresence.com/v1"

	cfg.Workflow.Timeout = 10

	cfg.Redis.ApplyPerMinute = 10
	cfg.Redis.AIPerMinute = 20

	cfg.Workers.DeletionSweepInterval = 5 * time.Minute
	cfg.Workers.DeletionBatchSize = 20

	return &cfg
}

// LoadConfig собирает конфиг: значения по умолчанию -> YAML-файл -> .env -> переменные окружения.
// Отсутствие файла конфигурации не является ошибкой.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.yaml"
	}

	if err := loadFile(cfg, path); err != nil {
		return nil, err
	}

	// .env опционален (как в Railway/Docker переменные приходят напрямую)
	_ = godotenv.Load()

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Env, "NODE_ENV", "SERVER_ENV")
	setInt(&cfg.Server.Port, "PORT", "SERVER_PORT")
	setString(&cfg.Server.FrontendURL, "FRONTEND_URL")
	setString(&cfg.Server.BackendURL, "BACKEND_URL")

	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.DSN, "DATABASE_URL")

	setString(&cfg.Identity.ProjectID, "FIREBASE_PROJECT_ID")
	setString(&cfg.Identity.CredentialsFile, "FIREBASE_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS")
	setString(&cfg.Identity.DevSecret, "IDENTITY_DEV_SECRET", "JWT_SECRET")

	setString(&cfg.Email.SMTPHost, "EMAIL_HOST")
	setInt(&cfg.Email.SMTPPort, "EMAIL_PORT")
	setString(&cfg.Email.SMTPUsername, "EMAIL_USER")
	setString(&cfg.Email.SMTPPassword, "EMAIL_PASSWORD")
	setString(&cfg.Email.FromEmail, "EMAIL_FROM")

	setString(&cfg.Storage.Type, "STORAGE_TYPE")
	setString(&cfg.Storage.BasePath, "STORAGE_BASE_PATH")
	setString(&cfg.Storage.BaseURL, "STORAGE_BASE_URL")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET", "FIREBASE_STORAGE_BUCKET")
	setString(&cfg.Storage.Region, "STORAGE_REGION")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setString(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")

	setString(&cfg.AI.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&cfg.AI.Model, "GEMINI_MODEL")

	setString(&cfg.Meeting.APIKey, "BEYONDPRESENCE_API_KEY")
	setString(&cfg.Meeting.APIURL, "BEYONDPRESENCE_API_URL")

	setString(&cfg.Workflow.WebhookURL, "N8N_WEBHOOK_URL")
	setString(&cfg.Workflow.WebhookSecret, "N8N_WEBHOOK_SECRET")

	setString(&cfg.Webhook.Secret, "WEBHOOK_SECRET")

	setString(&cfg.Redis.URL, "REDIS_URL")
}

// Validate проверяет комбинации, с которыми сервис не сможет работать
func (c *Config) Validate() error {
	var problems []string

	switch c.Server.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		problems = append(problems, fmt.Sprintf("unknown env %q", c.Server.Env))
	}

	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("unsupported database driver %q", c.Database.Driver))
	}

	if c.IsProduction() {
		if c.Identity.ProjectID == "" {
			problems = append(problems, "identity.project_id is required in production")
		}
		if c.Identity.DevSecret != "" {
			problems = append(problems, "identity.dev_secret must not be set in production")
		}
		if c.Webhook.Secret == "" {
			problems = append(problems, "webhook.secret is required in production")
		}
	} else if c.Identity.ProjectID == "" && c.Identity.DevSecret == "" {
		problems = append(problems, "either identity.project_id or identity.dev_secret must be set")
	}

	if c.Upload.MaxResumeSize <= 0 {
		problems = append(problems, "upload.max_resume_size must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func setString(dst *string, keys ...string) {
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
			return
		}
	}
}

func setInt(dst *int, keys ...string) {
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
				return
			}
		}
	}
}
