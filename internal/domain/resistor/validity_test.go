package resistor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidColorsForDigit(t *testing.T) {
	t.Parallel()

	withZero := ValidColorsFor(Role{Kind: RoleDigit, AllowZero: true})
	require.Equal(t, []ColorName{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}, withZero)

	noZero := ValidColorsFor(Role{Kind: RoleDigit, AllowZero: false})
	require.NotContains(t, noZero, Black)
	require.Len(t, noZero, 9)
	require.NotContains(t, noZero, Gold)
}

func TestValidColorsForOtherRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind RoleKind
		want []ColorName
	}{
		{
			name: "multiplier",
			kind: RoleMultiplier,
			want: Names(),
		},
		{
			name: "tolerance",
			kind: RoleTolerance,
			want: []ColorName{Brown, Red, Green, Blue, Violet, Grey, Gold, Silver},
		},
		{
			name: "temp coefficient",
			kind: RoleTempCoeff,
			want: []ColorName{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey},
		},
		{
			name: "unknown role",
			kind: RoleKind("bogus"),
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ValidColorsFor(Role{Kind: tt.kind}))
		})
	}
}

func TestIsValidFor(t *testing.T) {
	t.Parallel()

	require.True(t, IsValidFor(Role{Kind: RoleMultiplier}, Gold))
	require.False(t, IsValidFor(Role{Kind: RoleDigit, AllowZero: true}, Gold))
	require.False(t, IsValidFor(Role{Kind: RoleDigit}, Black))
	require.True(t, IsValidFor(Role{Kind: RoleDigit, AllowZero: true}, Black))
	require.False(t, IsValidFor(Role{Kind: RoleTolerance}, "chartreuse"))
}
