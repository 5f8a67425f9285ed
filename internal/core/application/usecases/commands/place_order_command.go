package commands

import (
	"errors"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrUserIDIsRequired = errors.New("userId is required")
)

// PlaceOrderCommand represents a customer's request to order one cocktail.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, "Alice", cocktailID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	userID     string
	cocktailID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new cocktail order.
// Validates that both ids are valid and the customer identifier is not empty.
func NewPlaceOrderCommand(orderID kernel.UUID, userID string, cocktailID kernel.UUID) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setCocktailID(cocktailID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer identifier placing the order.
func (c PlaceOrderCommand) UserID() string {
	return c.userID
}

// CocktailID returns the identifier of the ordered cocktail.
func (c PlaceOrderCommand) CocktailID() kernel.UUID {
	return c.cocktailID
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return ErrUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setCocktailID(cocktailID kernel.UUID) error {
	if err := cocktailID.Validate(); err != nil {
		return err
	}

	c.cocktailID = cocktailID
	return nil
}
