package queries

import (
	"errors"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/guard"
)

var (
	ErrGetAllCocktailsQueryIsNotConstructed = errors.New(
		"GetAllCocktailsQuery must be created via NewGetAllCocktailsQuery constructor",
	)
)

// GetAllCocktailsQuery retrieves the full cocktail catalog for the menu.
type GetAllCocktailsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCocktailsQuery creates a parameterless catalog query.
func NewGetAllCocktailsQuery() GetAllCocktailsQuery {
	return GetAllCocktailsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCocktailsQueryIsNotConstructed if validation fails.
func (q GetAllCocktailsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCocktailsQueryIsNotConstructed)
}

// CocktailResponse is one catalog entry as presented on the menu.
type CocktailResponse struct {
	ID          kernel.UUID
	Name        string
	PhotoURL    string
	Description string
	Ingredients []cocktail.Ingredient
	Recipe      string
	Strength    int
}
