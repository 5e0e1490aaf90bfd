package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"storefront/internal/core/application/usecases/queries"
)

// LowStockReportJob periodically reports products that are about to run
// out. It only logs; restocking is a human decision.
type LowStockReportJob struct {
	handler   queries.GetLowStockProductsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates the hourly low-stock report.
func NewLowStockReportJob(handler queries.GetLowStockProductsQueryHandler, threshold int, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start schedules the report at the top of every hour.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		query, qErr := queries.NewGetLowStockProductsQuery(j.threshold)
		if qErr != nil {
			j.logger.ErrorContext(ctx, "low stock report failed", "error", qErr)
			return
		}

		products, hErr := j.handler.Handle(ctx, query)
		if hErr != nil {
			j.logger.ErrorContext(ctx, "low stock report failed", "error", hErr)
			return
		}

		for _, p := range products {
			j.logger.WarnContext(ctx, "product low on stock",
				"product_id", p.ID.String(),
				"sku", p.SKU,
				"name", p.Name,
				"stock", p.Stock)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "low stock report job started (hourly)")
	return nil
}

// Stop stops the job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "low stock report job stopped")
}
