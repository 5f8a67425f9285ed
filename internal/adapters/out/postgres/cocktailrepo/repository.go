package cocktailrepo

import (
	"context"
	"errors"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCocktailRepository implements CocktailRepository using GORM.
type GormCocktailRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCocktailRepository creates a new GORM catalog repository.
func NewGormCocktailRepository(db *gorm.DB, tracker aggregateTracker) *GormCocktailRepository {
	return &GormCocktailRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
func (r *GormCocktailRepository) Add(ctx context.Context, aggregate *cocktail.Cocktail) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cocktail by ID.
func (r *GormCocktailRepository) Get(ctx context.Context, id kernel.UUID) (*cocktail.Cocktail, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CocktailDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cocktail", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
