package app

import (
	"time"

	"hr_portal_backend/internal/config"
	"hr_portal_backend/internal/handlers"
	"hr_portal_backend/internal/identity"
	"hr_portal_backend/internal/middleware"
	"hr_portal_backend/internal/routes"
	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/storage"
	"hr_portal_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouterDeps struct {
	DB       *gorm.DB
	Services *services.ServiceContainer
	Verifier identity.TokenVerifier
	Limiter  middleware.Limiter
	Storage  storage.Storage
}

func SetupRouter(cfg *config.Config, deps RouterDeps) *gin.Engine {
	switch cfg.Server.Env {
	case config.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	}

	appHandlers := initializeHandlers(cfg, deps)

	router := initializeGinRouter(cfg, deps.DB)
	routes.RegisterRoutes(router, appHandlers, routes.Options{
		EnableSwagger: !cfg.IsProduction(),
		Storage:       deps.Storage,
	})

	return router
}

func initializeHandlers(cfg *config.Config, deps RouterDeps) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New(), middleware.AuthMiddleware(deps.Verifier))

	applyLimit := middleware.RateLimit(deps.Limiter, "apply", cfg.Redis.ApplyPerMinute, time.Minute)
	aiLimit := middleware.RateLimit(deps.Limiter, "ai", cfg.Redis.AIPerMinute, time.Minute)

	return &handlers.AppHandlers{
		JobHandler:       handlers.NewJobHandler(baseHandler, deps.Services.JobService, aiLimit),
		CandidateHandler: handlers.NewCandidateHandler(baseHandler, deps.Services.CandidateService, applyLimit),
		InterviewHandler: handlers.NewInterviewHandler(baseHandler, deps.Services.InterviewService),
		UserHandler:      handlers.NewUserHandler(baseHandler, deps.Services.UserService),
		WebhookHandler: handlers.NewWebhookHandler(
			baseHandler,
			deps.Services.WebhookService,
			middleware.WebhookSecretMiddleware(cfg.Webhook.Secret),
		),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.FrontendURL))
	router.Use(middleware.DBMiddleware(db))
	return router
}
