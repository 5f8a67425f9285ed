// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// UserID and Status are indexed for the history and repost-sweep queries.
// NotificationMessageID is nullable: NULL means no live chat message owns
// this order.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                string    `gorm:"index"`
	CocktailID            uuid.UUID `gorm:"type:uuid;index"`
	Status                int       `gorm:"index"`
	NotificationMessageID *int64    `gorm:"type:bigint"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		UserID:                aggregate.UserID(),
		CocktailID:            aggregate.CocktailID().Bytes(),
		Status:                int(aggregate.Status()),
		NotificationMessageID: aggregate.NotificationMessageID(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cocktailID, err := kernel.UUIDFromBytes(dto.CocktailID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		cocktailID,
		order.Status(dto.Status),
		dto.NotificationMessageID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
