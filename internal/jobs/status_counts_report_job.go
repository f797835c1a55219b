package jobs

import (
	"context"
	"log/slog"

	"workorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultStatusReportSchedule runs the report every five minutes.
const DefaultStatusReportSchedule = "0 */5 * * * *"

type statusCountsHandler interface {
	Handle(ctx context.Context, query queries.GetStatusCountsQuery) (queries.GetStatusCountsQueryResponse, error)
}

// StatusCountsReportJob logs the per-status order counts on a cron schedule.
type StatusCountsReportJob struct {
	handler  statusCountsHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusCountsReportJob validates the schedule up front so a typo fails at startup.
func NewStatusCountsReportJob(
	handler statusCountsHandler,
	schedule string,
	logger *slog.Logger,
) (*StatusCountsReportJob, error) {
	if schedule == "" {
		schedule = DefaultStatusReportSchedule
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(schedule); err != nil {
		return nil, err
	}

	return &StatusCountsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_counts_report_job"),
	}, nil
}

// Start registers the report and starts the scheduler.
func (j *StatusCountsReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status counts report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *StatusCountsReportJob) Run(ctx context.Context) {
	resp, err := j.handler.Handle(ctx, queries.NewGetStatusCountsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Status counts report failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(resp.Counts)+2)
	attrs = append(attrs, "total", resp.Total)
	for _, c := range resp.Counts {
		attrs = append(attrs, string(c.Status), c.Count)
	}
	j.logger.InfoContext(ctx, "Order status counts", attrs...)
}

// Stop waits for a running report to finish.
func (j *StatusCountsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status counts report job stopped")
}
