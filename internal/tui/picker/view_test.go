package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func lineContaining(view, needle string) string {
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	return ""
}

func TestViewRendersResult(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 6)
	require.NoError(t, err)

	view := m.View()
	require.Contains(t, view, "Resistor Calculator")
	require.Contains(t, view, "6 bands")
	require.Contains(t, view, "520")
	require.Contains(t, view, "kΩ")
	require.Contains(t, view, "±5%")
	require.Contains(t, view, "100 ppm/K")
	require.Contains(t, view, "494 - 546kΩ")
	require.Contains(t, view, "Temp. Coeff.")
}

func TestViewOmitsTempCoeffWithoutBand(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)
	require.NotContains(t, m.View(), "TEMP. COEFF.")
}

func TestViewMarksSelectionAndDisabledSwatches(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)
	view := m.View()

	first := lineContaining(view, "1st Digit")
	require.NotEmpty(t, first)
	require.Contains(t, first, "[Gre]")
	require.NotContains(t, first, "Bla", "black is not a legal leading digit")
	require.NotContains(t, first, "Gol")

	second := lineContaining(view, "2nd Digit")
	require.Contains(t, second, "Bla")
	require.Contains(t, second, "[Red]")

	tolerance := lineContaining(view, "Tolerance")
	require.Contains(t, tolerance, "[Gol]")
	require.NotContains(t, tolerance, "Ora")
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.Empty(t, updated.(Model).View())
}
