package commands

import (
	"context"
	"log/slog"

	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
// Creates the order in Queued status, then posts the interactive notification
// message best-effort: the order stands even when the channel is down.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, channel, logger)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), "Alice", cocktailID)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	syncer     notificationSyncer
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and the notification
// channel for the initial message post.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	channel ports.NotificationChannel,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		syncer:     newNotificationSyncer(channel, logger.With("component", "place_order")),
	}
}

// Handle processes the order placement command.
// Verifies the referenced cocktail exists, persists the order in Queued
// status, and commits before any channel call. The notification post happens
// after commit; if it succeeds, the returned message id is stored as the
// order's ownership token.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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

	drink, err := uow.CocktailRepository().Get(ctx, cmd.CocktailID())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.CocktailID())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Post-commit, best-effort: a fresh repository outside the finished
	// transaction persists the message token if the post succeeds.
	h.syncer.postInitial(ctx, h.uowFactory.Create().OrderRepository(), placed, drink)

	return placed, nil
}
