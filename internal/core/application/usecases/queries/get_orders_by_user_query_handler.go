package queries

import (
	"context"
	"time"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByUserQueryHandler reads a customer's order history straight from
// the database, bypassing the aggregates. The read model joins each order with
// its cocktail so the API can render names without a second round trip.
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]GetOrdersByUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByUserQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.cocktail_id,
			c.name,
			c.strength,
			o.status,
			o.notification_message_id IS NOT NULL,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN cocktails c ON c.id = o.cocktail_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByUserQueryResponse
		var id, cocktailID uuid.UUID
		var status int
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&resp.UserID,
			&cocktailID,
			&resp.CocktailName,
			&resp.Strength,
			&status,
			&resp.HasMessage,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		drinkID, idErr := kernel.UUIDFromBytes(cocktailID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CocktailID = drinkID

		resp.StatusLabel = order.Status(status).Label()
		resp.CreatedAt = createdAt
		resp.UpdatedAt = updatedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
