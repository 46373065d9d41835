package validation

import (
	"errors"
	"fmt"
	"strings"

	"go-talent-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Field(), describe(e)))
	}
	return messages
}

// ItemError converts the first failure of a validated record into a
// ValidationError pointing at field[index].subfield. Field names come from
// the json tags when the validator is configured with a tag name func.
func ItemError(field string, index int, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperror.InvalidItem(field, index, "", err.Error())
	}
	e := validationErrors[0]
	return apperror.InvalidItem(field, index, e.Field(), describe(e))
}

// FieldError converts the first failure of a validated scalar into a
// field-level ValidationError.
func FieldError(field string, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperror.Invalid(field, err.Error())
	}
	return apperror.Invalid(field, describe(validationErrors[0]))
}

// describe formats a single validation error to a user-friendly message
func describe(e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		return fmt.Sprintf("must be at most %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(param, " ", ", "))
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "iso_date":
		return "must be a date formatted YYYY-MM-DD"
	case "valid_name":
		return "may only contain letters, digits, spaces and . ' - / & ( ) ,"
	case "no_emoji":
		return "must not contain emoji or special symbols"
	case "gtefield":
		return fmt.Sprintf("must not be before %s", param)
	default:
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}
