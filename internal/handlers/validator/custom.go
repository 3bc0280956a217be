package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// productUrlValidator accepts URLs carrying the supported marketplace
// domain marker anywhere in the value, matching the service contract.
func productUrlValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return strings.Contains(val, "meesho.com")
}
