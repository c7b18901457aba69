package errors

import (
	"errors"
	"strings"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
)

// Violation describes a single constraint failure on an entity property.
type Violation struct {
	PropertyPath string
	Message      string
}

// ValidationError aggregates constraint violations found on an entity.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds ValidationError with a single violation.
func NewValidationError(property, message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{PropertyPath: property, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.PropertyPath+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the property has at least one violation.
func (e *ValidationError) Has(property string) bool {
	for _, v := range e.Violations {
		if v.PropertyPath == property {
			return true
		}
	}
	return false
}
