package types

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StringToBool carries form booleans. Checkbox values ("on"/"off") are
// accepted alongside the strconv spellings.
type StringToBool string

func (s StringToBool) ToBool() bool {
	value, _ := parseBool(string(s))
	return value
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return strconv.ParseBool(strings.ToLower(s))
}

func ValidateStringToBool(fl validator.FieldLevel) bool {
	value := fl.Field().Interface().(StringToBool)
	_, err := parseBool(string(value))
	return err == nil
}
