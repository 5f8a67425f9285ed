// Package cocktailrepo provides data transfer objects and mapping functions
// for catalog persistence.
package cocktailrepo

import (
	"time"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CocktailDTO represents the database structure for persisting catalog entries.
// Ingredients are stored as a jsonb document: the recipe is read as a whole,
// never queried per ingredient.
type CocktailDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"index"`
	PhotoURL    string          `gorm:"column:photo_url"`
	Description string
	Ingredients []IngredientDTO `gorm:"type:jsonb;serializer:json"`
	Recipe      string
	Strength    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for catalog entries.
func (CocktailDTO) TableName() string {
	return "cocktails"
}

// IngredientDTO is one ingredient element of the jsonb document.
type IngredientDTO struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// fromDomain converts a catalog aggregate to its database representation.
func fromDomain(aggregate *cocktail.Cocktail) CocktailDTO {
	ingredients := make([]IngredientDTO, 0, len(aggregate.Ingredients()))
	for _, ing := range aggregate.Ingredients() {
		ingredients = append(ingredients, IngredientDTO{Name: ing.Name, Amount: ing.Amount})
	}

	return CocktailDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		PhotoURL:    aggregate.PhotoURL(),
		Description: aggregate.Description(),
		Ingredients: ingredients,
		Recipe:      aggregate.Recipe(),
		Strength:    aggregate.Strength().Value(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a catalog aggregate using RestoreCocktail.
func toDomain(dto CocktailDTO) (*cocktail.Cocktail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	strength, err := cocktail.NewStrength(dto.Strength)
	if err != nil {
		return nil, err
	}

	ingredients := make([]cocktail.Ingredient, 0, len(dto.Ingredients))
	for _, ing := range dto.Ingredients {
		ingredients = append(ingredients, cocktail.Ingredient{Name: ing.Name, Amount: ing.Amount})
	}

	return cocktail.RestoreCocktail(
		id,
		dto.Name,
		dto.PhotoURL,
		dto.Description,
		ingredients,
		dto.Recipe,
		strength,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
