package jobs

import (
	"context"
	"log/slog"

	"onboarding/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReviewBacklogJob periodically reports the outstanding admin review work.
// Runs every ten minutes and logs the backlog so operators notice queues
// that stop draining.
type ReviewBacklogJob struct {
	handler queries.GetReviewBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReviewBacklogJob creates a new job for reporting the review backlog.
// Uses GetReviewBacklogQueryHandler to count pending registrations and
// unresolved profile updates.
func NewReviewBacklogJob(handler queries.GetReviewBacklogQueryHandler, logger *slog.Logger) *ReviewBacklogJob {
	return &ReviewBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "review_backlog_job"),
	}
}

// Start begins the review backlog job to run every ten minutes.
func (j *ReviewBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 */10 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetReviewBacklogQuery()

		backlog, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Review backlog job failed", "error", err)
			return
		}

		if backlog.PendingRegistrations == 0 && backlog.UnresolvedUpdates == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Review backlog awaiting admin action",
			"pending_registrations", backlog.PendingRegistrations,
			"unresolved_updates", backlog.UnresolvedUpdates)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Review backlog job started (running every ten minutes)")
	return nil
}

// Stop stops the review backlog job.
func (j *ReviewBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Review backlog job stopped")
}
