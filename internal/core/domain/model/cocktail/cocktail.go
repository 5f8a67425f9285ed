package cocktail

import (
	"errors"
	"time"

	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/errs"
)

var (
	// ErrCocktailIsNotConstructed is returned when a Cocktail instance was not created
	// through the NewCocktail or RestoreCocktail factory methods.
	ErrCocktailIsNotConstructed = errors.New("Cocktail must be created via NewCocktail or RestoreCocktail constructor")
)

// Ingredient is a single position of a cocktail's composition: a name and a
// free-text amount ("50 ml", "2 dashes"). Order of ingredients is meaningful
// and preserved.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Cocktail is a catalog entry: a drink with its composition, recipe, and
// strength level. From the ordering core's perspective the aggregate is
// read-only; it is referenced, never mutated, by orders.
type Cocktail struct {
	id          kernel.UUID
	name        string
	photoURL    string
	description string
	ingredients []Ingredient
	recipe      string
	strength    Strength
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewCocktail creates a catalog entry with validation. Name and recipe are
// required, strength must be within [1, 3], and every ingredient needs a name.
func NewCocktail(
	id kernel.UUID,
	name string,
	photoURL string,
	description string,
	ingredients []Ingredient,
	recipe string,
	strength Strength,
) (*Cocktail, error) {
	now := time.Now().UTC()
	c := &Cocktail{
		photoURL:      photoURL,
		description:   description,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setIngredients(ingredients),
		c.setRecipe(recipe),
		c.setStrength(strength),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCocktail reconstructs a Cocktail from persisted state.
func RestoreCocktail(
	id kernel.UUID,
	name string,
	photoURL string,
	description string,
	ingredients []Ingredient,
	recipe string,
	strength Strength,
	createdAt time.Time,
	updatedAt time.Time,
) (*Cocktail, error) {
	c, err := NewCocktail(id, name, photoURL, description, ingredients, recipe, strength)
	if err != nil {
		return nil, err
	}

	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Cocktail instance was properly constructed through a factory method.
func (c *Cocktail) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCocktailIsNotConstructed
	}
	return nil
}

// ID returns the cocktail's unique identifier.
func (c *Cocktail) ID() kernel.UUID {
	return c.id
}

// Name returns the cocktail's display name.
func (c *Cocktail) Name() string {
	return c.name
}

// PhotoURL returns the stable URL of the cocktail's image, owned by the
// image storage collaborator.
func (c *Cocktail) PhotoURL() string {
	return c.photoURL
}

// Description returns the free-text description.
func (c *Cocktail) Description() string {
	return c.description
}

// Ingredients returns the ordered ingredient list.
func (c *Cocktail) Ingredients() []Ingredient {
	out := make([]Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

// Recipe returns the free-text preparation instructions.
func (c *Cocktail) Recipe() string {
	return c.recipe
}

// Strength returns the drink strength level.
func (c *Cocktail) Strength() Strength {
	return c.strength
}

// CreatedAt returns the catalog entry creation time.
func (c *Cocktail) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the time of the last catalog mutation.
func (c *Cocktail) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Cocktail) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cocktail) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Cocktail) setIngredients(ingredients []Ingredient) error {
	for _, ing := range ingredients {
		if ing.Name == "" {
			return errs.NewValueIsRequiredError("ingredient name")
		}
	}
	c.ingredients = make([]Ingredient, len(ingredients))
	copy(c.ingredients, ingredients)
	return nil
}

func (c *Cocktail) setRecipe(recipe string) error {
	if recipe == "" {
		return errs.NewValueIsRequiredError("recipe")
	}
	c.recipe = recipe
	return nil
}

func (c *Cocktail) setStrength(strength Strength) error {
	if err := strength.Validate(); err != nil {
		return err
	}
	c.strength = strength
	return nil
}
