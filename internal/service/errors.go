package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/birthday-wall/internal/repository"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound is reserved for single-record lookups; nothing returns it yet.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries a message safe to show to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}

// storeError classifies a repository failure. Constraint rejections are bad input;
// everything else means the store could not serve the request.
func storeError(op string, err error) error {
	if repository.IsConstraintViolation(err) {
		return &ValidationError{Message: op + ": rejected by the store: " + err.Error()}
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
