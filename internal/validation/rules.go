// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/pem"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/idforge/credentials/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty or whitespace-only.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
})

// PEMBlock validates that a string contains at least one parseable PEM block.
// It checks encoding only; certificate semantics are validated by the service
// layer.
var PEMBlock = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_pem_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if block, _ := pem.Decode([]byte(s)); block == nil {
		return validation.NewError("validation_pem", "must be PEM-encoded data")
	}
	return nil
})
