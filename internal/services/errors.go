package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/question-delivery-service/internal/errors"
	"github.com/SAP-F-2025/question-delivery-service/internal/repositories"
	"github.com/SAP-F-2025/question-delivery-service/internal/retrieval"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidQuestion   = errors.New("invalid question")
	ErrInvalidCategory   = errors.New("invalid question category")
	ErrKnownUserNotFound = errors.New("known user not found")
	ErrQuestionExists    = errors.New("question already exists")

	// ErrDataUnavailable wraps failures of the question store or the
	// known-user source
	ErrDataUnavailable = errors.New("data source unavailable")
)

type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrKnownUserNotFound) ||
		repositories.IsNotFoundError(err)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrInvalidQuestion) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrBadRequest) {
		return true
	}
	if _, ok := apperrors.AsConfigError(err); ok {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrQuestionExists) ||
		repositories.IsDuplicateError(err)
}

// IsUnavailable checks if a backing store or remote source failed
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrDataUnavailable) ||
		errors.Is(err, retrieval.ErrRetriesExhausted)
}
