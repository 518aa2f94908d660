package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hr_portal_backend/internal/config"
	"hr_portal_backend/internal/email"
	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/imageprocessor"
	"hr_portal_backend/internal/integrations/aitext"
	"hr_portal_backend/internal/integrations/meeting"
	"hr_portal_backend/internal/integrations/resumetext"
	"hr_portal_backend/internal/integrations/workflow"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/middleware"
	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/storage"

	"github.com/redis/go-redis/v9"
)

// Dependencies - внешние клиенты, созданные один раз и переданные вниз
type Dependencies struct {
	Verifier identity.TokenVerifier
	Limiter  middleware.Limiter
	Redis    *redis.Client
	Services services.Dependencies
}

func (d *Dependencies) Close() {
	if d == nil || d.Redis == nil {
		return
	}
	if err := d.Redis.Close(); err != nil {
		logger.Warn("Failed to close redis client", "error", err)
	}
}

func BuildDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	verifier, err := identity.NewJWTVerifier(identity.VerifierConfig{
		ProjectID: cfg.Identity.ProjectID,
		CertsURL:  cfg.Identity.CertsURL,
		DevSecret: cfg.Identity.DevSecret,
	}, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	accounts, err := buildAccountManager(ctx, cfg)
	if err != nil {
		return nil, err
	}

	mailer, err := buildMailer(cfg)
	if err != nil {
		return nil, err
	}

	generator, err := aitext.New(ctx, aitext.Config{
		APIKey: cfg.AI.GeminiAPIKey,
		Model:  cfg.AI.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AI generator: %w", err)
	}
	if !generator.Configured() {
		logger.Warn("GEMINI_API_KEY is not set, AI description generation is disabled")
	}

	meetings := meeting.NewClient(meeting.Config{
		APIKey:           cfg.Meeting.APIKey,
		APIURL:           cfg.Meeting.APIURL,
		AllowPlaceholder: !cfg.IsProduction(),
	})

	trigger := workflow.NewClient(workflow.Config{
		WebhookURL:    cfg.Workflow.WebhookURL,
		WebhookSecret: cfg.Workflow.WebhookSecret,
		Timeout:       time.Duration(cfg.Workflow.Timeout) * time.Second,
	})
	if !trigger.Enabled() {
		logger.Warn("N8N_WEBHOOK_URL is not set, workflow trigger is disabled")
	}

	redisClient, err := buildRedis(cfg)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Verifier: verifier,
		Limiter:  middleware.NewRedisLimiter(redisClient),
		Redis:    redisClient,
		Services: services.Dependencies{
			Storage:   storageInstance,
			Accounts:  accounts,
			Mailer:    mailer,
			Generator: generator,
			Meetings:  meetings,
			Workflow:  trigger,
			Extractor: resumetext.NewDocconvExtractor(),
			Images:    imageprocessor.NewProcessor(cfg.Upload.ImageQuality),
			ResumePolicy: services.ResumePolicy{
				MaxSize:    cfg.Upload.MaxResumeSize,
				Extensions: cfg.Upload.ResumeExts,
			},
			MaxPhotoSize: cfg.Upload.MaxPhotoSize,
		},
	}, nil
}

func buildAccountManager(ctx context.Context, cfg *config.Config) (identity.AccountManager, error) {
	if cfg.Identity.ProjectID != "" {
		manager, err := identity.NewToolkitAccountManager(ctx, identity.AccountsConfig{
			CredentialsFile: cfg.Identity.CredentialsFile,
			APIEndpoint:     cfg.Identity.APIEndpoint,
		})
		if err == nil {
			return manager, nil
		}
		if cfg.IsProduction() {
			return nil, fmt.Errorf("failed to initialize identity accounts: %w", err)
		}
		logger.Warn("Identity admin API unavailable, using in-memory accounts", "error", err)
	}

	if cfg.IsProduction() {
		return nil, fmt.Errorf("identity admin API is required in production")
	}
	logger.Warn("Using in-memory identity accounts (development only)")
	return identity.NewMemoryAccountManager(), nil
}

func buildMailer(cfg *config.Config) (*email.Mailer, error) {
	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	if cfg.Email.SMTPUsername == "" || cfg.Email.SMTPPassword == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SMTP credentials are required in production")
		}
		logger.Warn("SMTP credentials are not set, emails will only be logged")
		return email.NewMailer(email.NewLogProvider(), templates), nil
	}

	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	if cfg.Email.FromName != "" {
		smtpConfig.FromName = cfg.Email.FromName
	}

	provider, err := email.NewSMTPProvider(smtpConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SMTP provider: %w", err)
	}
	logger.Info("SMTP email provider initialized", "host", smtpConfig.Host, "port", smtpConfig.Port)
	return email.NewMailer(provider, templates), nil
}

func buildRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		logger.Warn("REDIS_URL is not set, rate limiting is disabled")
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}
