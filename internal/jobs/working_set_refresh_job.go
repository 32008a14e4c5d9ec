package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// WorkingSetLoader reloads the unpaid working set from storage. Satisfied by
// services.OrderService.
type WorkingSetLoader interface {
	Load(ctx context.Context) error
}

// WorkingSetRefreshJob periodically replaces the in-memory unpaid working set
// with the stored state. The cache is authoritative between refreshes; the job
// exists so database changes made outside this process eventually show up.
type WorkingSetRefreshJob struct {
	loader WorkingSetLoader
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

// NewWorkingSetRefreshJob creates a refresh job with a cron spec such as
// "@every 1m".
func NewWorkingSetRefreshJob(loader WorkingSetLoader, spec string, logger *slog.Logger) *WorkingSetRefreshJob {
	return &WorkingSetRefreshJob{
		loader: loader,
		spec:   spec,
		cron:   cron.New(),
		logger: logger.With("component", "working_set_refresh_job"),
	}
}

// Start schedules the refresh.
func (j *WorkingSetRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.loader.Load(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Working set refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Working set refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the refresh job.
func (j *WorkingSetRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Working set refresh job stopped")
}
