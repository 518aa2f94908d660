package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hr_portal_backend/internal/config"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/services"
	"hr_portal_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// Application - собранный сервис: зависимости, роутер и фоновые обработчики
type Application struct {
	cfg      *config.Config
	db       *gorm.DB
	deps     *Dependencies
	services *services.ServiceContainer
	router   *gin.Engine
	deletion *workers.DeletionWorker
}

// New собирает приложение поверх уже открытой БД
func New(ctx context.Context, cfg *config.Config, db *gorm.DB) (*Application, error) {
	deps, err := BuildDependencies(ctx, cfg)
	if err != nil {
		return nil, err
	}

	container := services.NewServiceContainer(deps.Services)

	router := SetupRouter(cfg, RouterDeps{
		DB:       db,
		Services: container,
		Verifier: deps.Verifier,
		Limiter:  deps.Limiter,
		Storage:  deps.Services.Storage,
	})

	return &Application{
		cfg:      cfg,
		db:       db,
		deps:     deps,
		services: container,
		router:   router,
		deletion: workers.NewDeletionWorker(
			db,
			container.DeletionService,
			cfg.Workers.DeletionSweepInterval,
			cfg.Workers.DeletionBatchSize,
		),
	}, nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) DeletionWorker() *workers.DeletionWorker {
	return a.deletion
}

// Run запускает HTTP-сервер и воркер; возвращается после отмены ctx и graceful shutdown
func (a *Application) Run(ctx context.Context) error {
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	a.deletion.Start(workerCtx)

	address := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", address, "env", a.cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("server startup error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// Close освобождает внешние клиенты (redis)
func (a *Application) Close() {
	a.deps.Close()
}
