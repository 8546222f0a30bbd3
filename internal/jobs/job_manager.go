package jobs

import (
	"fmt"
	"log/slog"

	"rugops/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	approvalReminderJob *ApprovalReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingApprovalHandler queries.GetPendingApprovalOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		approvalReminderJob: NewApprovalReminderJob(pendingApprovalHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.approvalReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start approval reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.approvalReminderJob.Stop()
}
