package workers

import (
	"context"
	"time"

	"hr_portal_backend/internal/logger"
	"hr_portal_backend/internal/services"

	"gorm.io/gorm"
)

// DeletionWorker периодически удаляет данные пользователей, запросивших удаление
type DeletionWorker struct {
	db        *gorm.DB
	service   services.DeletionService
	interval  time.Duration
	batchSize int
}

func NewDeletionWorker(db *gorm.DB, service services.DeletionService, interval time.Duration, batchSize int) *DeletionWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 20
	}
	return &DeletionWorker{
		db:        db,
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

// Start запускает цикл в отдельной горутине; остановка по отмене ctx
func (w *DeletionWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *DeletionWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Deletion worker started", "interval", w.interval, "batch_size", w.batchSize)

	// Первый проход сразу: отметки могли остаться с прошлого запуска
	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Deletion worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce - один проход; используется и CLI-командой sweep-deletions
func (w *DeletionWorker) RunOnce(ctx context.Context) *services.SweepResult {
	result, err := w.service.SweepDeletions(ctx, w.db.WithContext(ctx), w.batchSize)
	if err != nil {
		logger.WorkerLog("deletion", "sweep", err)
		return result
	}
	if result.Processed > 0 {
		logger.WorkerLog("deletion", "sweep", nil,
			"processed", result.Processed,
			"purged", result.Purged,
			"failed", result.Failed,
		)
	}
	return result
}
