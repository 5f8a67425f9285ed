package queries

import (
	"context"
	"database/sql"
	"errors"

	"homebar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCocktailQueryHandler reads one catalog entry straight from the database.
type GetCocktailQueryHandler struct {
	db *gorm.DB
}

// NewGetCocktailQueryHandler creates a handler for single-cocktail queries.
func NewGetCocktailQueryHandler(db *gorm.DB) GetCocktailQueryHandler {
	return GetCocktailQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// identifier matches no catalog entry.
func (h GetCocktailQueryHandler) Handle(
	ctx context.Context,
	query GetCocktailQuery,
) (CocktailResponse, error) {
	if err := query.Validate(); err != nil {
		return CocktailResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			photo_url,
			description,
			ingredients,
			recipe,
			strength
		FROM cocktails
		WHERE id = ?
	`, query.CocktailID().Bytes()).Row()

	resp, err := scanCocktailRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CocktailResponse{}, errs.NewObjectNotFoundError("cocktail", query.CocktailID().String())
		}
		return CocktailResponse{}, err
	}

	return resp, nil
}
