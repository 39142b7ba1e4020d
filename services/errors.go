package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds returned by the engine. Callers test them with errors.Is.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("booking conflict")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrAlreadySettled      = errors.New("order already settled")
	ErrStorage             = errors.New("storage failure")
)

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func notFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// storageError wraps an infrastructure error. Errors that already carry a
// kind from this package pass through unchanged.
func storageError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isKind(err) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// lookupError maps gorm.ErrRecordNotFound to ErrNotFound.
func lookupError(what string, id interface{}, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("%s %v", what, id)
	}
	return storageError("load "+what, err)
}

func isKind(err error) bool {
	for _, kind := range []error{ErrInvalidArgument, ErrNotFound, ErrConflict, ErrInsufficientPayment, ErrAlreadySettled, ErrStorage} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
