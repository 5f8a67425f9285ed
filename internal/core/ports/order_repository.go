package ports

import (
	"context"
	"errors"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"
)

// ErrOrderStatusConflict is returned by UpdateStatus when the stored status no
// longer matches the expected source status at commit time, i.e. another actor
// applied a transition first. The caller must not retry blindly: the losing
// transition is rejected, not reapplied.
var ErrOrderStatusConflict = errors.New("order status was changed concurrently")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus commits the aggregate's current status with a single-row
	// conditional update: the write only applies while the stored status still
	// equals expected. Returns ErrOrderStatusConflict when the row exists but
	// the comparison fails, which is how concurrent transitions on the same
	// order are serialized without in-process locking.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdateNotificationMessage persists the aggregate's notification message
	// token (set after a successful post, nil after cleanup). Kept separate
	// from UpdateStatus because channel effects are applied after the status
	// commit, best-effort. Attaching a token is conditional: it only applies
	// while the stored status is still live (Queued or InProgress), and
	// returns ErrOrderStatusConflict when the order went terminal in the
	// meantime, so a racing post can never leave a token on a finished order.
	// Clearing the token is unconditional.
	UpdateNotificationMessage(ctx context.Context, aggregate *order.Order) error

	// GetAllAwaitingNotification retrieves live orders (Queued or InProgress)
	// that have no notification message token, typically because the channel
	// was unavailable when they were placed.
	GetAllAwaitingNotification(ctx context.Context) ([]*order.Order, error)
}
