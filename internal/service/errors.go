package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors the handlers map to HTTP status codes.
var (
	ErrNotFound           = errors.New("appointment not found")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("appointment already resolved")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("a user with this email already exists")
)

// ValidationError reports every input field that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError builds a ValidationError from per-field messages.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
