package cocktail

import "homebar/internal/pkg/errs"

const (
	// MinStrength is the lightest drink level.
	MinStrength = 1
	// MaxStrength is the strongest drink level.
	MaxStrength = 3
)

// Strength is an ordinal drink strength level between 1 and 3.
// It is a value object validated at construction.
type Strength int

// NewStrength creates a Strength, rejecting values outside [1, 3].
func NewStrength(value int) (Strength, error) {
	if value < MinStrength || value > MaxStrength {
		return 0, errs.NewValueIsOutOfRangeError("strength", value, MinStrength, MaxStrength)
	}
	return Strength(value), nil
}

// Value returns the numeric strength level.
func (s Strength) Value() int {
	return int(s)
}

// Validate checks that the strength is within its allowed bounds.
func (s Strength) Validate() error {
	if s < MinStrength || s > MaxStrength {
		return errs.NewValueIsOutOfRangeError("strength", int(s), MinStrength, MaxStrength)
	}
	return nil
}
