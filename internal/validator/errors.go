package validator

import (
	"github.com/SAP-F-2025/question-delivery-service/internal/errors"
)

// Use shared errors from errors package
type ValidationError = errors.ValidationError
type ValidationErrors = errors.ValidationErrors
type ConfigError = errors.ConfigError

// ToValidationErrors converts validator.ValidationErrors to our custom type
func ToValidationErrors(err error) ValidationErrors {
	return errors.ToValidationErrors(err)
}
