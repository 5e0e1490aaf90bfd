// Package jobs provides the scheduled background tasks of the store,
// implemented with github.com/robfig/cron/v3.
//
// Two jobs run:
//
//  1. LowStockReportJob - hourly; logs active products at or below the
//     configured stock threshold so operators can restock before sales fail.
//  2. CounterCleanupJob - daily; prunes order number counter rows older
//     than the retention window. Counters are only ever read for the
//     current day, so old rows are pure bloat.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(lowStockHandler, db, threshold, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
