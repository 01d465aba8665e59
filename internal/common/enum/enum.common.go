package enum

import (
	"github.com/go-playground/validator/v10"
)

type Enum interface {
	ToString() string
	IsValid() bool
}

// ValidateEnum backs the "enum" validation tag. Empty optional values are
// accepted so that omitempty-style fields do not need a second tag.
func ValidateEnum(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(Enum)
	if !ok {
		return false
	}
	if fl.Field().IsZero() {
		return true
	}
	return value.IsValid()
}
