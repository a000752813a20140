package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)

	// Configuration errors
	ErrInvalidConfig     = errors.New("invalid method configuration")
	ErrConfigMismatch    = fmt.Errorf("%w: configuration does not match method", ErrInvalidConfig)
	ErrNonNumericColumn  = fmt.Errorf("%w: method requires a numeric column", ErrInvalidConfig)
	ErrUnsupportedMethod = errors.New("unsupported analysis method")

	// Chain and filter errors
	ErrInvalidChain  = errors.New("invalid analysis chain")
	ErrInvalidFilter = errors.New("invalid filter")
)

// Error constructors with context
func NewColumnNotFoundError(key string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, key)
}

func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, reason)
}

func NewChainError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidChain, reason)
}

func NewFilterError(column string, reason string) error {
	return fmt.Errorf("%w on %s: %s", ErrInvalidFilter, column, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) || errors.Is(err, ErrUnsupportedMethod)
}
