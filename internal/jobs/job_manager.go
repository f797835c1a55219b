package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusCountsReportJob *StatusCountsReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statusCounts statusCountsHandler,
	statusReportSchedule string,
	logger *slog.Logger,
) (*JobManager, error) {
	reportJob, err := NewStatusCountsReportJob(statusCounts, statusReportSchedule, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid status report schedule: %w", err)
	}

	return &JobManager{statusCountsReportJob: reportJob}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusCountsReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start status counts report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusCountsReportJob.Stop()
}
