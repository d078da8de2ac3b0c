package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestNewUsesDefaultSelection(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, m.BandCount())
	assert.Equal(t, resistor.Selection{resistor.Green, resistor.Red, resistor.Blue, resistor.Gold}, m.Selection())
	assert.Equal(t, "52MΩ", m.Report().Resistance.String())
	assert.NoError(t, m.Err())
	assert.Nil(t, m.Init())
}

func TestNewRejectsUnsupportedBandCount(t *testing.T) {
	t.Parallel()

	_, err := New(nil, 7)
	require.True(t, resistor.IsCode(err, resistor.ErrCodeBandCount))
}

func TestCursorWraps(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 3)
	require.NoError(t, err)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.Cursor())

	m = press(t, m, runes("j"))
	assert.Equal(t, 0, m.Cursor())
}

func TestCyclingSkipsInvalidColors(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)

	// First digit: white wraps to brown, never black.
	m.selection[0] = resistor.White
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, resistor.Brown, m.Selection()[0])

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, resistor.White, m.Selection()[0])

	// Tolerance band: gold -> silver -> brown, skipping colors without a tolerance.
	m = press(t, m, runes("j"), runes("j"), runes("j"))
	require.Equal(t, 3, m.Cursor())
	m = press(t, m, runes("l"))
	assert.Equal(t, resistor.Silver, m.Selection()[3])
	m = press(t, m, runes("l"))
	assert.Equal(t, resistor.Brown, m.Selection()[3])
	assert.Equal(t, "±1%", m.Report().Tolerance)
}

func TestCyclingRecomputesReport(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)

	// Multiplier blue -> violet.
	m = press(t, m, runes("j"), runes("j"), runes("l"))
	assert.Equal(t, resistor.Violet, m.Selection()[2])
	assert.Equal(t, "520MΩ", m.Report().Resistance.String())
}

func TestBandCountKeysResetSelection(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)

	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("6"))
	assert.Equal(t, 6, m.BandCount())
	assert.Equal(t, 3, m.Cursor())
	assert.Equal(t, "520kΩ", m.Report().Resistance.String())
	assert.Equal(t, "100 ppm/K", m.Report().TempCoeff)

	m = press(t, m, runes("j"), runes("j"), runes("3"))
	assert.Equal(t, 3, m.BandCount())
	assert.Equal(t, 2, m.Cursor(), "cursor clamps to the last band")
	assert.Equal(t, "±20%", m.Report().Tolerance)
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 5)
	require.NoError(t, err)

	m = press(t, m, runes("l"), runes("j"), runes("r"))
	want, _ := resistor.DefaultSelection(5)
	assert.Equal(t, want, m.Selection())
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdateDoesNotMutatePreviousModel(t *testing.T) {
	t.Parallel()

	before, err := New(nil, 4)
	require.NoError(t, err)

	after := press(t, before, runes("l"))
	assert.Equal(t, resistor.Green, before.Selection()[0])
	assert.Equal(t, resistor.Blue, after.Selection()[0])
}

func TestQuitAndHelpKeys(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)

	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(Model).Quitting())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSizeMsg(t *testing.T) {
	t.Parallel()

	m, err := New(nil, 4)
	require.NoError(t, err)

	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 100, m.help.Width)
}
