package queries

import (
	"errors"
	"time"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/errs"
	"homebar/internal/pkg/guard"
)

var (
	ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
		"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
	)
)

// GetOrdersByUserQuery retrieves all orders placed by one customer,
// newest first, joined with the ordered cocktail for display.
//
// Example:
//
//	query, err := NewGetOrdersByUserQuery("Alice")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrdersByUserQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetOrdersByUserQuery struct {
	userID string

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for one customer's order history.
func NewGetOrdersByUserQuery(userID string) (GetOrdersByUserQuery, error) {
	if userID == "" {
		return GetOrdersByUserQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByUserQueryIsNotConstructed if validation fails.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the customer whose orders are requested.
func (q GetOrdersByUserQuery) UserID() string {
	return q.userID
}

// GetOrdersByUserQueryResponse is one row of a customer's order history.
// StatusLabel carries the localized status literal used at the API boundary.
type GetOrdersByUserQueryResponse struct {
	ID           kernel.UUID
	UserID       string
	CocktailID   kernel.UUID
	CocktailName string
	Strength     int
	StatusLabel  string
	HasMessage   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
