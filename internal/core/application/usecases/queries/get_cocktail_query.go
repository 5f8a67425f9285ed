package queries

import (
	"errors"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/guard"
)

var (
	ErrGetCocktailQueryIsNotConstructed = errors.New(
		"GetCocktailQuery must be created via NewGetCocktailQuery constructor",
	)
)

// GetCocktailQuery retrieves one catalog entry by its identifier.
type GetCocktailQuery struct {
	cocktailID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCocktailQuery creates a query for a single cocktail.
func NewGetCocktailQuery(cocktailID kernel.UUID) (GetCocktailQuery, error) {
	if err := cocktailID.Validate(); err != nil {
		return GetCocktailQuery{}, err
	}

	return GetCocktailQuery{
		cocktailID: cocktailID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCocktailQueryIsNotConstructed if validation fails.
func (q GetCocktailQuery) Validate() error {
	return q.guard.Validate(ErrGetCocktailQueryIsNotConstructed)
}

// CocktailID returns the identifier of the requested cocktail.
func (q GetCocktailQuery) CocktailID() kernel.UUID {
	return q.cocktailID
}
