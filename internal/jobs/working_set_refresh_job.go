package jobs

import (
	"context"
	"log/slog"

	"storeadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultWorkingSetRefreshSpec reloads the order working set every minute.
const DefaultWorkingSetRefreshSpec = "0 * * * * *"

// OrdersRefresher reloads the working set from the store.
type OrdersRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshOrdersCommand) (int, error)
}

// WorkingSetRefreshJob keeps the in-memory orders close to the store when
// other writers change it.
type WorkingSetRefreshJob struct {
	handler OrdersRefresher
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewWorkingSetRefreshJob(handler OrdersRefresher, spec string, logger *slog.Logger) *WorkingSetRefreshJob {
	if spec == "" {
		spec = DefaultWorkingSetRefreshSpec
	}
	return &WorkingSetRefreshJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "working_set_refresh_job"),
	}
}

// Start schedules the refresh. A failed refresh is logged and the previous
// working set stays in place.
func (j *WorkingSetRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		n, err := j.handler.Handle(ctx, commands.NewRefreshOrdersCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Working set refresh failed", "error", err)
			return
		}
		j.logger.DebugContext(ctx, "Working set refreshed", "orders", n)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Working set refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *WorkingSetRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Working set refresh job stopped")
}
