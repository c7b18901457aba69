package dto

import domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"

const validationFailedMessage = "Validation failed"

// ErrorResponse is the body of every non validation error.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewError builds ErrorResponse.
func NewError(status int, message string) ErrorResponse {
	return ErrorResponse{Status: status, Message: message}
}

// Violation is one failed constraint.
type Violation struct {
	PropertyPath string `json:"propertyPath"`
	Message      string `json:"message"`
}

// ValidationResponse lists constraint violations of a rejected payload.
type ValidationResponse struct {
	Status     int         `json:"status"`
	Message    string      `json:"message"`
	Violations []Violation `json:"violations"`
}

// NewValidationResponse converts a domain validation error.
func NewValidationResponse(status int, err *domainErrors.ValidationError) ValidationResponse {
	out := ValidationResponse{
		Status:     status,
		Message:    validationFailedMessage,
		Violations: make([]Violation, 0, len(err.Violations)),
	}
	for _, v := range err.Violations {
		out.Violations = append(out.Violations, Violation{PropertyPath: v.PropertyPath, Message: v.Message})
	}
	return out
}
