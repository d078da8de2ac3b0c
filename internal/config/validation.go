package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	bandcodeerrors "github.com/alexisbeaulieu97/bandcode/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the
// document. All failures are reported together as
// bandcodeerrors.ValidationErrors.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return bandcodeerrors.NewValidationError("config", "configuration is nil", nil)
	}

	var problems bandcodeerrors.ValidationErrors

	if err := validatorInstance().Struct(cfg); err != nil {
		problems = append(problems, convertValidationError(err)...)
	}

	seen := make(map[string]int, len(cfg.Resistors))
	for i, r := range cfg.Resistors {
		if r.ID != "" {
			if first, dup := seen[r.ID]; dup {
				problems = append(problems, &bandcodeerrors.ValidationError{
					Field:   fieldForResistor(i, "id"),
					Message: fmt.Sprintf("duplicate resistor id %q (first used by resistors[%d])", r.ID, first),
				})
			} else {
				seen[r.ID] = i
			}
		}

		if cfg.Settings.Bands != 0 && len(r.Bands) != 0 && len(r.Bands) != cfg.Settings.Bands {
			problems = append(problems, &bandcodeerrors.ValidationError{
				Field:   fieldForResistor(i, "bands"),
				Message: fmt.Sprintf("has %d bands, settings.bands requires %d", len(r.Bands), cfg.Settings.Bands),
			})
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

// convertValidationError normalizes validator errors into bandcode validation errors.
func convertValidationError(err error) bandcodeerrors.ValidationErrors {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return bandcodeerrors.ValidationErrors{
			{Field: "config", Message: err.Error(), Err: err},
		}
	}

	out := make(bandcodeerrors.ValidationErrors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, &bandcodeerrors.ValidationError{
			Field:   yamlishFieldName(fe),
			Message: describe(fe),
			Err:     fe,
		})
	}
	return out
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// a path like "resistors[2].bands[0]".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "semver":
		return fmt.Sprintf("%q is not a semantic version", fe.Value())
	case "resistor_id":
		return fmt.Sprintf("%q must contain only lowercase letters, digits, '_' or '-'", fe.Value())
	case "color_name":
		return fmt.Sprintf("unknown color %q", fe.Value())
	case "band_count":
		return fmt.Sprintf("%v is not a supported band count", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func fieldForResistor(index int, field string) string {
	return fmt.Sprintf("resistors[%d].%s", index, field)
}
