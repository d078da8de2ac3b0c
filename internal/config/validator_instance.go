package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	resistorIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml keys rather than Go field names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("resistor_id", func(fl validator.FieldLevel) bool {
			return resistorIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color_name", func(fl validator.FieldLevel) bool {
			_, err := resistor.ParseColorName(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("band_count", func(fl validator.FieldLevel) bool {
			_, err := resistor.LayoutFor(int(fl.Field().Int()))
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
