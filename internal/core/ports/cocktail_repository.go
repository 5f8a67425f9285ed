package ports

import (
	"context"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"
)

// CocktailRepository defines the persistence contract for catalog entries.
// The ordering core only reads cocktails; Add exists for catalog seeding.
type CocktailRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *cocktail.Cocktail) error

	// Get retrieves a cocktail by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cocktail.Cocktail, error)
}
