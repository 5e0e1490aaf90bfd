package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"storefront/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockReportJob *LowStockReportJob
	counterCleanupJob *CounterCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	lowStockHandler queries.GetLowStockProductsQueryHandler,
	db *gorm.DB,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockReportJob: NewLowStockReportJob(lowStockHandler, lowStockThreshold, logger),
		counterCleanupJob: NewCounterCleanupJob(db, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	if err := jm.counterCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockReportJob.Stop()
		return fmt.Errorf("failed to start counter cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
	jm.counterCleanupJob.Stop()
}
