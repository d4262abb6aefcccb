// Package errs contains the error taxonomy shared by the meditary stores.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates caller supplied data that violates a precondition.
	ErrValidation = errors.New("validation")

	// ErrNotFound indicates the referenced id does not exist in the target collection.
	ErrNotFound = errors.New("not found")

	// ErrStorage indicates the underlying key-value store failed.
	ErrStorage = errors.New("storage")
)

// Validationf wraps ErrValidation with a formatted reason.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a formatted reason.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// StorageError records a failed read or write against a storage key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorage) match any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// Storage wraps err as a StorageError, passing nil through.
func Storage(op, key string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Key: key, Err: err}
}
