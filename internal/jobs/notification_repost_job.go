package jobs

import (
	"context"
	"log/slog"

	"homebar/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRepostJob periodically retries posting the interactive chat
// message for live orders that have none, typically because the channel was
// down when they were placed.
type NotificationRepostJob struct {
	handler commands.RepostNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRepostJob creates a job that sweeps for unnotified orders
// every 30 seconds.
func NewNotificationRepostJob(handler commands.RepostNotificationsCommandHandler, logger *slog.Logger) *NotificationRepostJob {
	return &NotificationRepostJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_repost_job"),
	}
}

// Start begins the repost sweep on a 30 second schedule.
func (j *NotificationRepostJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRepostNotificationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification repost job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification repost job started (running every 30 seconds)")
	return nil
}

// Stop stops the repost sweep.
func (j *NotificationRepostJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification repost job stopped")
}
