package routes

import (
	"hr_portal_backend/docs"
	"hr_portal_backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupPublicRoutes - маршруты вне /api: документация и локальные файлы
func SetupPublicRoutes(r *gin.Engine, opts Options) {
	if opts.EnableSwagger {
		docs.SwaggerInfo.BasePath = "/api"
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if local, ok := opts.Storage.(*storage.LocalStorage); ok {
		r.Static(local.URLPrefix(), local.BasePath())
	}
}
