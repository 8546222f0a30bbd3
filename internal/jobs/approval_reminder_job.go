package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"rugops/internal/core/application/usecases/queries"
)

// approvalReminderSchedule fires at the top of every hour.
const approvalReminderSchedule = "0 0 * * * *"

// ApprovalReminderJob periodically lists orders still waiting on a client
// decision and logs a reminder for each, oldest first. Read-only: chasing
// the client stays a human task.
type ApprovalReminderJob struct {
	handler queries.GetPendingApprovalOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewApprovalReminderJob creates a new reminder job over the approval backlog.
func NewApprovalReminderJob(
	handler queries.GetPendingApprovalOrdersQueryHandler,
	logger *slog.Logger,
) *ApprovalReminderJob {
	return &ApprovalReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "approval_reminder_job"),
	}
}

// Start begins the hourly reminder schedule.
func (j *ApprovalReminderJob) Start() error {
	_, err := j.cron.AddFunc(approvalReminderSchedule, func() {
		ctx := context.Background()

		pending, err := j.handler.Handle(ctx, queries.NewGetPendingApprovalOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Approval reminder job failed", "error", err)
			return
		}

		if len(pending) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Orders awaiting client approval", "count", len(pending))
		for _, view := range pending {
			j.logger.InfoContext(ctx, "Awaiting approval",
				"orderId", view.ID,
				"client", view.ClientName,
				"phone", view.Phone,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Approval reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *ApprovalReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Approval reminder job stopped")
}
