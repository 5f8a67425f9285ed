package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"
)

// channelCallTimeout bounds every notification channel call so a slow remote
// cannot stall the transition path. The status write has already committed by
// the time the channel is touched.
const channelCallTimeout = 10 * time.Second

// notificationSyncer reconciles the external interactive message with an
// order's committed status. All of its work is best-effort: failures are
// logged and never propagate into the transition result, since the stored
// state is authoritative and the message converges on the next transition
// or becomes irrelevant once the order is terminal.
type notificationSyncer struct {
	channel ports.NotificationChannel
	logger  *slog.Logger
}

func newNotificationSyncer(channel ports.NotificationChannel, logger *slog.Logger) notificationSyncer {
	return notificationSyncer{
		channel: channel,
		logger:  logger,
	}
}

// postInitial sends the interactive message for a freshly placed order and
// persists the returned message id as the ownership token. Called after the
// order row is committed; a channel failure leaves the order live with no
// token, to be retried by the repost job. If the order finished while the
// post was in flight the token write is rejected and the fresh message is
// deleted again, so it never outlives the order.
func (s notificationSyncer) postInitial(
	ctx context.Context,
	repo ports.OrderRepository,
	o *order.Order,
	c *cocktail.Cocktail,
) {
	callCtx, cancel := context.WithTimeout(ctx, channelCallTimeout)
	defer cancel()

	messageID, err := s.channel.Post(callCtx, o, c)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to post order notification",
			"orderId", o.ID().String(), "error", err)
		return
	}

	if err = o.AttachNotificationMessage(messageID); err != nil {
		s.logger.WarnContext(ctx, "Failed to attach notification message",
			"orderId", o.ID().String(), "error", err)
		return
	}

	if err = repo.UpdateNotificationMessage(ctx, o); err != nil {
		if errors.Is(err, ports.ErrOrderStatusConflict) {
			// The order went terminal between the read and the token write.
			// Retire the message that was just posted so the chat is not left
			// with live controls for a finished order.
			o.DetachNotificationMessage()
			if removeErr := s.channel.Remove(callCtx, messageID); removeErr != nil {
				s.logger.WarnContext(ctx, "Failed to remove notification for finished order",
					"orderId", o.ID().String(), "error", removeErr)
			}
			return
		}
		s.logger.ErrorContext(ctx, "Failed to persist notification message id",
			"orderId", o.ID().String(), "error", err)
	}
}

// syncAfterTransition applies the channel effects of a committed transition:
// a live order gets its message re-rendered with the controls of the new
// status; a terminal order gets its message deleted, a completion notice
// sent, and the ownership token cleared. No message token means nothing to
// reconcile.
func (s notificationSyncer) syncAfterTransition(
	ctx context.Context,
	repo ports.OrderRepository,
	o *order.Order,
	c *cocktail.Cocktail,
) {
	messageID := o.NotificationMessageID()
	if messageID == nil {
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, channelCallTimeout)
	defer cancel()

	if !o.Status().IsTerminal() {
		if err := s.channel.Update(callCtx, *messageID, o, c); err != nil {
			s.logger.WarnContext(ctx, "Failed to update order notification",
				"orderId", o.ID().String(), "status", o.Status().String(), "error", err)
		}
		return
	}

	if err := s.channel.Remove(callCtx, *messageID); err != nil {
		s.logger.WarnContext(ctx, "Failed to remove order notification",
			"orderId", o.ID().String(), "error", err)
	}

	if err := s.channel.NotifyCompletion(callCtx, o.UserID(), c.Name(), o.Status()); err != nil {
		s.logger.WarnContext(ctx, "Failed to send completion notice",
			"orderId", o.ID().String(), "error", err)
	}

	// The token is cleared even when the remote delete failed: the message is
	// already detached from the lifecycle and retrying against a gone message
	// id would never succeed.
	o.DetachNotificationMessage()
	if err := repo.UpdateNotificationMessage(ctx, o); err != nil {
		s.logger.ErrorContext(ctx, "Failed to clear notification message id",
			"orderId", o.ID().String(), "error", err)
	}
}
