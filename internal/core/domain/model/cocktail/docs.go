// Package cocktail implements the read-only Cocktail catalog aggregate:
// a drink with its ordered ingredient list, recipe, and strength level.
// Orders reference cocktails by id and never mutate them.
package cocktail
