// Package validation adapts go-playground/validator to the domain InputValidator and echo's Validator.
package validation

import (
	"reflect"
	"strings"

	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/service"
	"jobportal/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request structs by their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

var _ service.InputValidator = (*Validator)(nil)

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// NewInputValidator exposes the Validator as the domain interface for dependency injection.
func NewInputValidator(v *Validator) service.InputValidator {
	return v
}

// Validate checks i and returns ErrValidationFailed listing every failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " must be at least " + fe.Param() + unit(fe)
	case "max":
		return field + " must be at most " + fe.Param() + unit(fe)
	case "oneof":
		return field + " must be one of [" + fe.Param() + "]"
	case "uuid":
		return field + " must be a valid id"
	default:
		return field + " failed " + fe.Tag() + " validation"
	}
}

func unit(fe validator.FieldError) string {
	if fe.Kind() == reflect.String {
		return " characters"
	}

	return ""
}
