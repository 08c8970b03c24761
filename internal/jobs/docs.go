// Package jobs provides scheduled background tasks for the store admin service.
//
// Jobs run on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// 1. WorkingSetRefreshJob - reloads the in-memory order working set from the store
// 2. DashboardSummaryJob - recomputes the dashboard summary and writes it to the cache
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshOrdersHandler, dashboardHandler, jobs.Schedules{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. A failed refresh never
// clears the working set or the cache. Failed job starts stop any already
// running jobs.
package jobs
