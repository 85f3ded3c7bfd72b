package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationFailed indicates the configuration failed validation.
var ErrValidationFailed = errors.New("validation failed")

// ValidationError lists every problem found by Validate.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Problems, "\n  - "))
}

// Unwrap returns ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
