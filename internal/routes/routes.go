package routes

import (
	"hr_portal_backend/internal/handlers"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type Options struct {
	EnableSwagger bool
	// Storage - при локальном хранилище файлы раздаются самим сервером
	Storage storage.Storage
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, opts Options) {
	api := ginRouter.Group("/api")
	appHandlers.RegisterRoutes(api)

	SetupPublicRoutes(ginRouter, opts)

	ginRouter.NoRoute(handlers.NotFound)
	logger.Info("HTTP routes registered", "swagger", opts.EnableSwagger)
}
