package commands

import (
	"context"
	"fmt"
	"log/slog"

	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"
)

// CancelQueuedOrderCommandHandler handles the generic cancellation path.
// Unlike the transition handler it only accepts orders that are still Queued:
// once the bartender has taken an order, cancellation must go through the
// explicit transition surface.
type CancelQueuedOrderCommandHandler struct {
	uowFactory UoWFactory
	syncer     notificationSyncer
}

// NewCancelQueuedOrderCommandHandler creates a handler for queued-order cancellation.
func NewCancelQueuedOrderCommandHandler(
	uowFactory UoWFactory,
	channel ports.NotificationChannel,
	logger *slog.Logger,
) CancelQueuedOrderCommandHandler {
	return CancelQueuedOrderCommandHandler{
		uowFactory: uowFactory,
		syncer:     newNotificationSyncer(channel, logger.With("component", "cancel_queued_order")),
	}
}

// Handle cancels a queued order.
//
// Rejections:
//   - errs.ObjectNotFoundError when the order is unknown
//   - ErrOrderNotCancellable when the order is in any status but Queued
//   - ports.ErrOrderStatusConflict when the compare-and-set lost a race
func (h *CancelQueuedOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelQueuedOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if current.Status() != order.Queued {
		return nil, fmt.Errorf("%w: status is %s", ErrOrderNotCancellable, current.Status())
	}

	drink, err := uow.CocktailRepository().Get(ctx, current.CocktailID())
	if err != nil {
		return nil, err
	}

	if err = current.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().UpdateStatus(ctx, current, order.Queued); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.syncer.syncAfterTransition(ctx, h.uowFactory.Create().OrderRepository(), current, drink)

	return current, nil
}
