package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"unauthenticated", ErrUnauthenticated},
		{"forbidden", ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("wrap: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match: %v", tc.err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Violations: []Violation{
		{PropertyPath: "firstname", Message: "too short"},
		{PropertyPath: "email", Message: "blank"},
	}}

	if !err.Has("firstname") || !err.Has("email") {
		t.Fatalf("expected both properties to be reported")
	}
	if err.Has("lastname") {
		t.Fatalf("did not expect lastname violation")
	}
	if !strings.Contains(err.Error(), "firstname: too short") {
		t.Fatalf("unexpected message %q", err.Error())
	}

	var target *ValidationError
	if !stdErrors.As(fmt.Errorf("create user: %w", err), &target) {
		t.Fatal("expected errors.As to unwrap validation error")
	}
	if len(target.Violations) != 2 {
		t.Fatalf("expected two violations, got %d", len(target.Violations))
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("email", "This value is already used.")
	if len(err.Violations) != 1 || err.Violations[0].PropertyPath != "email" {
		t.Fatalf("unexpected violations %+v", err.Violations)
	}
}
