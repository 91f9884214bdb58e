package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every store when a record does not exist
var ErrNotFound = errors.New("record not found")

// NotFoundError wraps ErrNotFound with the entity and key that were missing
func NotFoundError(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, ErrNotFound)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ErrDuplicate is wrapped by every store when a record with the same key exists
var ErrDuplicate = errors.New("record already exists")

func DuplicateError(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, ErrDuplicate)
}

func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
