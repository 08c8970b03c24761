package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron specs of the jobs. Empty fields use the defaults.
type Schedules struct {
	WorkingSetRefresh string
	DashboardSummary  string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workingSetRefreshJob *WorkingSetRefreshJob
	dashboardSummaryJob  *DashboardSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	ordersRefresher OrdersRefresher,
	summaryRefresher SummaryRefresher,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workingSetRefreshJob: NewWorkingSetRefreshJob(ordersRefresher, schedules.WorkingSetRefresh, logger),
		dashboardSummaryJob:  NewDashboardSummaryJob(summaryRefresher, schedules.DashboardSummary, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workingSetRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start working set refresh job: %w", err)
	}

	if err := jm.dashboardSummaryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.workingSetRefreshJob.Stop()
		return fmt.Errorf("failed to start dashboard summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dashboardSummaryJob.Stop()
	jm.workingSetRefreshJob.Stop()
}
