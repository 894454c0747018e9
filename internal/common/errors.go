package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorage            = errors.New("storage error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// StorageUnavailableError marks a failure to open the store or create its schema.
func StorageUnavailableError(message string, cause error) error {
	return NewAppError("STORAGE_UNAVAILABLE", message, fmt.Errorf("%w: %w", ErrStorageUnavailable, cause))
}

// StorageError marks a failure of a single store operation.
func StorageError(message string, cause error) error {
	return NewAppError("STORAGE_ERROR", message, fmt.Errorf("%w: %w", ErrStorage, cause))
}
