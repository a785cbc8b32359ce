package jobs

import (
	"context"
	"log/slog"

	"production/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CalendarSyncer rebuilds the in-memory calendar from storage.
type CalendarSyncer interface {
	Handle(ctx context.Context, cmd commands.SyncCalendarCommand) (int, error)
}

// CalendarResyncJob periodically reloads every reservation so the calendar
// converges with the database after out-of-band edits.
type CalendarResyncJob struct {
	handler CalendarSyncer
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCalendarResyncJob creates the job. spec is a six-field cron expression.
func NewCalendarResyncJob(handler CalendarSyncer, spec string, logger *slog.Logger) *CalendarResyncJob {
	return &CalendarResyncJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "calendar_resync_job"),
	}
}

// Run performs a single resync.
func (j *CalendarResyncJob) Run(ctx context.Context) {
	n, err := j.handler.Handle(ctx, commands.NewSyncCalendarCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Calendar resync failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Calendar resynced", "reservations", n)
}

func (j *CalendarResyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Calendar resync job started", "spec", j.spec)
	return nil
}

// Stop waits for a running resync to finish.
func (j *CalendarResyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Calendar resync job stopped")
}
