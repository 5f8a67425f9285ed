package commands

import (
	"errors"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/guard"
)

var (
	ErrCancelQueuedOrderCommandIsNotConstructed = errors.New(
		"CancelQueuedOrderCommand must be created via NewCancelQueuedOrderCommand constructor",
	)

	// ErrOrderNotCancellable is returned when the generic cancellation path is
	// attempted on an order that is not Queued. An InProgress order can only be
	// cancelled through the explicit transition path, mirroring the remote
	// control surface. This asymmetry with the transition table is deliberate.
	ErrOrderNotCancellable = errors.New("only queued orders can be cancelled via delete")
)

// CancelQueuedOrderCommand is the generic "delete order" request: a customer
// withdrawing an order the bartender has not picked up yet.
type CancelQueuedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelQueuedOrderCommand creates a command to cancel a still-queued order.
func NewCancelQueuedOrderCommand(orderID kernel.UUID) (CancelQueuedOrderCommand, error) {
	cmd := CancelQueuedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelQueuedOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelQueuedOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelQueuedOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelQueuedOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelQueuedOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
