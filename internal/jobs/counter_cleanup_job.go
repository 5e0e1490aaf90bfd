package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// counterRetentionDays is how long spent order number counter rows are
// kept. Only the current day's row is ever read back.
const counterRetentionDays = 90

// CounterCleanupJob prunes order number counter rows past the retention
// window.
type CounterCleanupJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCounterCleanupJob creates the daily counter cleanup.
func NewCounterCleanupJob(db *gorm.DB, logger *slog.Logger) *CounterCleanupJob {
	return &CounterCleanupJob{
		db:     db,
		cron:   cron.New(),
		logger: logger.With("component", "counter_cleanup_job"),
	}
}

// Start schedules the cleanup shortly after midnight UTC.
func (j *CounterCleanupJob) Start() error {
	_, err := j.cron.AddFunc("10 0 * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -counterRetentionDays).Format("20060102")

		result := j.db.WithContext(ctx).Exec("DELETE FROM order_counters WHERE day < ?", cutoff)
		if result.Error != nil {
			j.logger.ErrorContext(ctx, "counter cleanup failed", "error", result.Error)
			return
		}
		if result.RowsAffected > 0 {
			j.logger.InfoContext(ctx, "pruned order counters", "rows", result.RowsAffected)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "counter cleanup job started (daily)")
	return nil
}

// Stop stops the job.
func (j *CounterCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "counter cleanup job stopped")
}
