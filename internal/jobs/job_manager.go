package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules are the cron expressions of the background jobs.
type Schedules struct {
	CalendarResync string
	OverdueReport  string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	calendarResyncJob *CalendarResyncJob
	overdueReportJob  *OverdueReportJob
}

func NewJobManager(
	syncer CalendarSyncer,
	metrics MetricsReader,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		calendarResyncJob: NewCalendarResyncJob(syncer, schedules.CalendarResync, logger),
		overdueReportJob:  NewOverdueReportJob(metrics, schedules.OverdueReport, logger),
	}
}

// StartAll starts all scheduled jobs. If one fails, the jobs already started
// are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.calendarResyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start calendar resync job: %w", err)
	}

	if err := jm.overdueReportJob.Start(); err != nil {
		jm.calendarResyncJob.Stop()
		return fmt.Errorf("failed to start overdue report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueReportJob.Stop()
	jm.calendarResyncJob.Stop()
}
