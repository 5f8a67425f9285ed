package cocktail_test

import (
	"testing"

	"homebar/internal/core/domain/model/cocktail"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIngredients() []cocktail.Ingredient {
	return []cocktail.Ingredient{
		{Name: "Джин", Amount: "50 мл"},
		{Name: "Тоник", Amount: "150 мл"},
	}
}

func TestNewStrength(t *testing.T) {
	t.Run("should accept levels 1 to 3", func(t *testing.T) {
		for v := 1; v <= 3; v++ {
			s, err := cocktail.NewStrength(v)
			require.NoError(t, err)
			assert.Equal(t, v, s.Value())
		}
	})

	t.Run("should reject out-of-range levels", func(t *testing.T) {
		for _, v := range []int{0, -1, 4, 10} {
			_, err := cocktail.NewStrength(v)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestNewCocktail(t *testing.T) {
	id := kernel.NewUUID()
	strength, _ := cocktail.NewStrength(2)

	t.Run("should create valid cocktail", func(t *testing.T) {
		c, err := cocktail.NewCocktail(id, "Джин-тоник", "/photos/gt.jpg", "Классика", validIngredients(), "Смешать и подать со льдом", strength)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Джин-тоник", c.Name())
		assert.Equal(t, 2, c.Strength().Value())
		assert.Len(t, c.Ingredients(), 2)
		assert.False(t, c.CreatedAt().IsZero())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := cocktail.NewCocktail(id, "", "", "", validIngredients(), "recipe", strength)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with empty recipe", func(t *testing.T) {
		c, err := cocktail.NewCocktail(id, "Негрони", "", "", validIngredients(), "", strength)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with nameless ingredient", func(t *testing.T) {
		bad := []cocktail.Ingredient{{Name: "", Amount: "50 мл"}}

		c, err := cocktail.NewCocktail(id, "Негрони", "", "", bad, "recipe", strength)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with invalid strength", func(t *testing.T) {
		c, err := cocktail.NewCocktail(id, "Негрони", "", "", validIngredients(), "recipe", cocktail.Strength(9))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, c)
	})

	t.Run("ingredients accessor returns a copy", func(t *testing.T) {
		c, err := cocktail.NewCocktail(id, "Негрони", "", "", validIngredients(), "recipe", strength)
		require.NoError(t, err)

		got := c.Ingredients()
		got[0].Name = "mutated"

		assert.Equal(t, "Джин", c.Ingredients()[0].Name)
	})
}

func TestCocktail_Validate(t *testing.T) {
	t.Run("should reject zero-value cocktail", func(t *testing.T) {
		var c cocktail.Cocktail

		require.ErrorIs(t, c.Validate(), cocktail.ErrCocktailIsNotConstructed)
	})
}
