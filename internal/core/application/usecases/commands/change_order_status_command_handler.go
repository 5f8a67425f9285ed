package commands

import (
	"context"
	"log/slog"

	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"
)

// ChangeOrderStatusCommandHandler is the single authority for order lifecycle
// transitions. Every status change in the system, whether triggered by a
// local API request or a remote button press, funnels through this handler.
//
// The handler enforces two independent guards:
//   - the lifecycle graph: the requested edge must be legal from the current
//     stored status (stale or duplicate requests are rejected without writes)
//   - the compare-and-set commit: the status row is only updated while it
//     still holds the observed source status, so two racing transitions can
//     never both apply from the same state
//
// Channel effects (message update, or delete + completion notice on terminal
// transitions) run after the commit, best-effort.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	syncer     notificationSyncer
}

// NewChangeOrderStatusCommandHandler creates the lifecycle transition handler.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	channel ports.NotificationChannel,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		syncer:     newNotificationSyncer(channel, logger.With("component", "change_order_status")),
	}
}

// Handle applies the requested transition.
//
// Returns the transitioned order on success. Rejections:
//   - errs.ObjectNotFoundError when the order or its cocktail is unknown
//   - order.ErrInvalidStatusTransition when the edge is not legal from the
//     current status (e.g. a repeated or stale request)
//   - ports.ErrOrderStatusConflict when the compare-and-set lost a race
//
// No writes happen on any rejection path.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	drink, err := uow.CocktailRepository().Get(ctx, current.CocktailID())
	if err != nil {
		return nil, err
	}

	observed := current.Status()
	if err = current.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().UpdateStatus(ctx, current, observed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.syncer.syncAfterTransition(ctx, h.uowFactory.Create().OrderRepository(), current, drink)

	return current, nil
}
