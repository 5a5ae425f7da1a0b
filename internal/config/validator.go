// Package config provides configuration management for the inventory tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a single validation error with user-friendly message.
type ValidationError struct {
	Field   string      // Field path (e.g., "source.n9e.endpoint")
	Tag     string      // Validation tag that failed (e.g., "required", "url")
	Value   interface{} // Actual value that failed validation
	Message string      // User-friendly error message
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

var validate = validator.New()

// Validate validates the configuration and returns user-friendly error messages.
func Validate(cfg *Config) error {
	var validationErrors ValidationErrors

	if err := validate.Struct(cfg); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				validationErrors = append(validationErrors, &ValidationError{
					Field:   formatFieldName(fe.Namespace()),
					Tag:     fe.Tag(),
					Value:   fe.Value(),
					Message: translateError(fe),
				})
			}
		}
	}

	if errs := validateN9ESource(cfg); len(errs) > 0 {
		validationErrors = append(validationErrors, errs...)
	}

	if errs := validateRoles(cfg); len(errs) > 0 {
		validationErrors = append(validationErrors, errs...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// validateN9ESource checks the fields the N9E source needs once it is selected.
func validateN9ESource(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	if cfg.Source.Type != SourceN9E {
		return errs
	}

	if cfg.Source.N9E.Endpoint == "" {
		errs = append(errs, &ValidationError{
			Field:   "source.n9e.endpoint",
			Tag:     "required_when_n9e",
			Value:   "",
			Message: "endpoint is required when source.type is n9e",
		})
	}
	if cfg.Source.N9E.Token == "" {
		errs = append(errs, &ValidationError{
			Field:   "source.n9e.token",
			Tag:     "required_when_n9e",
			Value:   "",
			Message: "token is required when source.type is n9e",
		})
	}

	return errs
}

// validateRoles rejects keywords that can never match a machine name.
func validateRoles(cfg *Config) ValidationErrors {
	var errs ValidationErrors

	for i, role := range cfg.Roles {
		if role != strings.TrimSpace(role) || strings.ContainsAny(role, "\t\n") {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("roles[%d]", i),
				Tag:     "keyword",
				Value:   role,
				Message: fmt.Sprintf("role keyword %q must not contain surrounding whitespace, tabs or newlines", role),
			})
		}
	}

	return errs
}

// formatFieldName converts the validator field namespace to a user-friendly format.
// Example: "Config.Source.N9E.Endpoint" -> "source.n9e.endpoint"
func formatFieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:] // Remove "Config"
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}

// translateError converts a validator.FieldError to a user-friendly message.
func translateError(fe validator.FieldError) string {
	field := formatFieldName(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "url":
		return fmt.Sprintf("invalid URL format: %v", fe.Value())
	case "gte":
		return fmt.Sprintf("value must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("value must be less than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "unique":
		return "values must be unique"
	case "oneof":
		return fmt.Sprintf("value must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("validation failed on '%s' tag for field '%s'", fe.Tag(), field)
	}
}
