package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bddreport/internal/narrative"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct constraints and the feature language.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fieldErr := range fieldErrs {
			add(fieldName(fieldErr), describe(fieldErr))
		}
	}
	if cfg.FeatureLanguage != "" && !narrative.IsKnownLanguage(cfg.FeatureLanguage) {
		add("feature_language", fmt.Sprintf("unsupported Gherkin language %q", cfg.FeatureLanguage))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// fieldName converts Config.Requirements.Types[1] into requirements.types[1].
func fieldName(err validator.FieldError) string {
	namespace := strings.TrimPrefix(err.StructNamespace(), "Config.")
	parts := strings.Split(namespace, ".")
	for i, part := range parts {
		parts[i] = snake(part)
	}
	return strings.Join(parts, ".")
}

func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func describe(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "eq":
		return fmt.Sprintf("unsupported value %v", err.Value())
	case "unique":
		return "must not contain duplicates"
	default:
		return fmt.Sprintf("failed %q check", err.Tag())
	}
}
