package commands

import (
	"context"
	"log/slog"

	"homebar/internal/core/ports"
)

// RepostNotificationsCommandHandler finds live orders without a notification
// message token and tries to post their message again. Each order is handled
// independently and best-effort; one failing post does not stop the sweep.
type RepostNotificationsCommandHandler struct {
	uowFactory UoWFactory
	syncer     notificationSyncer
}

// NewRepostNotificationsCommandHandler creates a handler for the repost sweep.
func NewRepostNotificationsCommandHandler(
	uowFactory UoWFactory,
	channel ports.NotificationChannel,
	logger *slog.Logger,
) RepostNotificationsCommandHandler {
	return RepostNotificationsCommandHandler{
		uowFactory: uowFactory,
		syncer:     newNotificationSyncer(channel, logger.With("component", "repost_notifications")),
	}
}

// Handle runs one sweep. Reads happen outside any transaction: the sweep
// races with regular transitions by design, and a stale read only means the
// post is skipped or repaired on the next run.
func (h *RepostNotificationsCommandHandler) Handle(ctx context.Context, cmd RepostNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()

	awaiting, err := orderRepo.GetAllAwaitingNotification(ctx)
	if err != nil {
		return err
	}

	for _, o := range awaiting {
		drink, err := uow.CocktailRepository().Get(ctx, o.CocktailID())
		if err != nil {
			h.syncer.logger.WarnContext(ctx, "Skipping repost for order with unknown cocktail",
				"orderId", o.ID().String(), "error", err)
			continue
		}

		h.syncer.postInitial(ctx, orderRepo, o, drink)
	}

	return nil
}
