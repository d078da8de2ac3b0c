package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCommandTable(t *testing.T) {
	t.Parallel()

	out, _, err := executeRoot(t, "layout", "6")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "VALID COLORS")
	assert.Contains(t, lines[1], "1st Digit")
	assert.NotContains(t, lines[1], "black")
	assert.Contains(t, lines[2], "black")
	assert.Contains(t, lines[6], "Temp. Coeff.")
	assert.Contains(t, lines[6], "brown")
}

func TestLayoutCommandJSON(t *testing.T) {
	t.Parallel()

	out, _, err := executeRoot(t, "layout", "3", "--json")
	require.NoError(t, err)

	var payload layoutJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, 3, payload.BandCount)
	require.Len(t, payload.Bands, 3)
	assert.False(t, payload.Bands[0].AllowZero)
	assert.True(t, payload.Bands[1].AllowZero)
	assert.Len(t, payload.Bands[2].ValidColors, 12)
	assert.EqualValues(t, "blue", payload.Bands[2].Default)
}

func TestLayoutCommandRejectsBadCounts(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"7", "two"} {
		_, _, err := executeRoot(t, "layout", arg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 3 and 6")
	}
}
