package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed here")
	err := NewParseError("drawer.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "drawer.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: drawer.yaml:7: mapping values are not allowed here", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: missing.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("resistors[1].bands[0]", "unknown color \"teal\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "resistors[1].bands[0]", validationErr.Field)
	require.Contains(t, err.Error(), "unknown color")
}

func TestValidationErrorsAggregate(t *testing.T) {
	t.Parallel()

	first := &ValidationError{Field: "name", Message: "is required"}
	second := &ValidationError{Field: "resistors[0].id", Message: "is required"}
	var err error = ValidationErrors{first, second}

	require.Contains(t, err.Error(), "2 validation errors")
	require.Contains(t, err.Error(), "resistors[0].id")
	require.True(t, stdErrors.Is(err, second))

	var target *ValidationError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "name", target.Field)

	require.Equal(t, []string{"name", "resistors[0].id"}, ValidationErrors{first, second}.Fields())
	require.Equal(t, first.Error(), ValidationErrors{first}.Error())
}
