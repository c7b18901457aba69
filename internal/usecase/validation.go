package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
)

// blankMessages overrides the generic "required" message per property.
var blankMessages = map[string]string{
	"firstname":  "The first name can not be blank",
	"lastname":   "The last name can not be blank",
	"email":      "The email can not be blank",
	"customerId": "The customerId can not be blank",
}

// Validator checks entity constraints declared in `validate` struct tags and
// reports them as domain violations keyed by JSON property name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator keyed on json tag names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate returns nil or a *ValidationError listing every violation.
func (v *Validator) Validate(entity any) error {
	err := v.validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := &domainErrors.ValidationError{Violations: make([]domainErrors.Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, domainErrors.Violation{
			PropertyPath: fe.Field(),
			Message:      messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := blankMessages[fe.Field()]; ok {
			return msg
		}
		return "This value should not be blank."
	case "min":
		return fmt.Sprintf("This value is too short. It should have %s characters or more.", fe.Param())
	case "max":
		return fmt.Sprintf("This value is too long. It should have %s characters or less.", fe.Param())
	case "email":
		return "This value is not a valid email address."
	default:
		return "This value is not valid."
	}
}
