package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	bandcodeerrors "github.com/alexisbeaulieu97/bandcode/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "drawer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0.0"
name: "Bench drawer"
description: "Parts sorted last weekend"
resistors:
  - id: pull_up
    label: "10k pull-up"
    bands: [brown, black, orange, gold]
  - id: led
    bands: "red-red-brown-gold"
  - id: precision
    bands: brown black black brown brown
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Bench drawer", cfg.Name)
				require.Len(t, cfg.Resistors, 3)
				require.Equal(t, []string{"brown", "black", "orange", "gold"}, cfg.Resistors[0].Bands)
				require.Equal(t, []string{"red", "red", "brown", "gold"}, cfg.Resistors[1].Bands)
				require.Len(t, cfg.Resistors[2].Bands, 5)
				require.Equal(t, "10k pull-up", cfg.Resistors[0].DisplayName())
				require.Equal(t, "led", cfg.Resistors[1].DisplayName())
			},
		},
		{
			name:     "malformed yaml reports line",
			contents: "version: \"1.0.0\"\nname: [unterminated\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *bandcodeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "bands mapping is rejected",
			contents: "version: \"1.0.0\"\nname: x\nresistors:\n  - id: a\n    bands: {first: red}\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *bandcodeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 5, parseErr.Line)
			},
		},
		{
			name:     "missing resistors fails validation",
			contents: "version: \"1.0.0\"\nname: empty\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var problems bandcodeerrors.ValidationErrors
				require.ErrorAs(t, err, &problems)
				require.Contains(t, problems.Fields(), "resistors")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *bandcodeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 12, extractLine(errString("yaml: line 12: did not find expected key")))
	require.Equal(t, 0, extractLine(errString("no line here")))
}

type errString string

func (e errString) Error() string { return string(e) }
