package queries

import (
	"context"
	"encoding/json"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCocktailsQueryHandler reads the catalog straight from the database.
type GetAllCocktailsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCocktailsQueryHandler creates a handler for catalog queries.
func NewGetAllCocktailsQueryHandler(db *gorm.DB) GetAllCocktailsQueryHandler {
	return GetAllCocktailsQueryHandler{db: db}
}

// Handle executes the query. Entries are sorted by name for a stable menu.
func (h GetAllCocktailsQueryHandler) Handle(
	ctx context.Context,
	query GetAllCocktailsQuery,
) ([]CocktailResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cocktails := make([]CocktailResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			photo_url,
			description,
			ingredients,
			recipe,
			strength
		FROM cocktails
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanCocktailRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		cocktails = append(cocktails, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cocktails, nil
}

// scanCocktailRow maps one catalog row into a response, decoding the jsonb
// ingredients column. Shared between the list and single-cocktail handlers.
func scanCocktailRow(scan func(dest ...any) error) (CocktailResponse, error) {
	var resp CocktailResponse
	var id uuid.UUID
	var ingredientsRaw []byte

	err := scan(
		&id,
		&resp.Name,
		&resp.PhotoURL,
		&resp.Description,
		&ingredientsRaw,
		&resp.Recipe,
		&resp.Strength,
	)
	if err != nil {
		return CocktailResponse{}, err
	}

	cocktailID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CocktailResponse{}, err
	}
	resp.ID = cocktailID

	ingredients := make([]cocktail.Ingredient, 0)
	if len(ingredientsRaw) > 0 {
		if err = json.Unmarshal(ingredientsRaw, &ingredients); err != nil {
			return CocktailResponse{}, err
		}
	}
	resp.Ingredients = ingredients

	return resp, nil
}
