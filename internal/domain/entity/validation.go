package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Field bounds, counted in runes.
const (
	MagazineNameMinLength = 2
	MagazineNameMaxLength = 16
	ArticleTitleMinLength = 5
	ArticleTitleMaxLength = 50
)

// ValidateRequired returns a ValidationError when value is empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidateLength checks that value has between minLen and maxLen runes, inclusive.
func ValidateLength(field, value string, minLen, maxLen int) error {
	n := text.CountRunes(value)
	if n < minLen || n > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters, got %d", minLen, maxLen, n),
		}
	}
	return nil
}
