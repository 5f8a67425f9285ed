package ports

import (
	"context"
	"errors"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/order"
)

var (
	// ErrChannelUnavailable is returned when the notification transport is not
	// configured or not reachable. Callers treat it as non-fatal: an order
	// proceeds through its lifecycle without a live notification message.
	ErrChannelUnavailable = errors.New("notification channel is unavailable")

	// ErrMessageNotFound is returned when the remote message to edit or delete
	// no longer exists on the channel side.
	ErrMessageNotFound = errors.New("notification message not found")
)

// NotificationChannel mirrors an order into a remote interactive message.
// An order owns at most one live message at a time; the message carries the
// action controls appropriate to the order's current status.
//
// All operations are best-effort from the lifecycle controller's perspective:
// failures are logged and never roll back a status transition that already
// committed. The stored state is authoritative; the remote message converges
// on the next transition or becomes irrelevant once the order is terminal.
type NotificationChannel interface {
	// Post sends a new interactive message for a freshly queued order and
	// returns the message id to be stored as the ownership token.
	Post(ctx context.Context, o *order.Order, c *cocktail.Cocktail) (int64, error)

	// Update re-renders the message with the order's current status and the
	// action controls appropriate to that status.
	Update(ctx context.Context, messageID int64, o *order.Order, c *cocktail.Cocktail) error

	// Remove deletes the interactive message.
	Remove(ctx context.Context, messageID int64) error

	// NotifyCompletion sends a one-shot, non-interactive notice after the
	// interactive message has been retired on a terminal transition.
	NotifyCompletion(ctx context.Context, userID, cocktailName string, status order.Status) error
}
