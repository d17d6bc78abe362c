package exceptions

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrFromValidation turns the first failed "required" rule into a
// PayloadError naming the missing JSON key.
func ErrFromValidation(err error) *PayloadError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return ErrMissingRequiredField(validationErrors[0].Field())
	}
	return ErrInvalidPayload(err)
}
