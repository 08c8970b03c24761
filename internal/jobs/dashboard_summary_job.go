package jobs

import (
	"context"
	"log/slog"

	"storeadmin/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDashboardSummarySpec recomputes the summary every 30 seconds.
const DefaultDashboardSummarySpec = "*/30 * * * * *"

// SummaryRefresher recomputes the dashboard summary and stores it in the cache.
type SummaryRefresher interface {
	Refresh(ctx context.Context) (queries.DashboardSummary, error)
}

// DashboardSummaryJob keeps the cached dashboard summary warm.
type DashboardSummaryJob struct {
	refresher SummaryRefresher
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewDashboardSummaryJob(refresher SummaryRefresher, spec string, logger *slog.Logger) *DashboardSummaryJob {
	if spec == "" {
		spec = DefaultDashboardSummarySpec
	}
	return &DashboardSummaryJob{
		refresher: refresher,
		spec:      spec,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "dashboard_summary_job"),
	}
}

func (j *DashboardSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		if _, err := j.refresher.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Dashboard summary refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dashboard summary job started", "spec", j.spec)
	return nil
}

func (j *DashboardSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dashboard summary job stopped")
}
