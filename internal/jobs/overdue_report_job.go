package jobs

import (
	"context"
	"log/slog"

	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// MetricsReader computes the dashboard metrics.
type MetricsReader interface {
	Handle(ctx context.Context, query queries.GetDashboardMetricsQuery) (queries.GetDashboardMetricsQueryResponse, error)
}

// OverdueReportJob logs how many orders are overdue or urgent.
type OverdueReportJob struct {
	reader MetricsReader
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

func NewOverdueReportJob(reader MetricsReader, spec string, logger *slog.Logger) *OverdueReportJob {
	return &OverdueReportJob{
		reader: reader,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "overdue_report_job"),
	}
}

// Run computes the metrics once and logs them. Overdue orders raise the level
// to warning.
func (j *OverdueReportJob) Run(ctx context.Context) {
	result, err := j.reader.Handle(ctx, queries.NewGetDashboardMetricsQuery(nil))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue report failed", "error", err)
		return
	}

	m := result.Metrics
	level := slog.LevelInfo
	if m.Overdue > 0 {
		level = slog.LevelWarn
	}
	j.logger.Log(ctx, level, "Overdue report",
		"total", m.Total,
		"overdue", m.Overdue,
		"due_today", m.ByLateness[services.DueToday],
		"urgent", m.Urgent,
	)
}

func (j *OverdueReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue report job started", "spec", j.spec)
	return nil
}

func (j *OverdueReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue report job stopped")
}
