package resistor

import (
	"strconv"
	"strings"
)

// DefaultTolerance is the tolerance in percent implied when a layout has
// no tolerance band.
const DefaultTolerance = 20.0

// Result is a decoded resistor. TempCoeffPPM is nil unless the layout
// carries a temperature-coefficient band.
type Result struct {
	Ohms             float64  `json:"ohms"`
	TolerancePercent float64  `json:"tolerance_percent"`
	TempCoeffPPM     *float64 `json:"temp_coeff_ppm"`
}

// Min returns the lower bound of the tolerance band in ohms.
func (r Result) Min() float64 {
	return r.Ohms * (1 - r.TolerancePercent/100)
}

// Max returns the upper bound of the tolerance band in ohms.
func (r Result) Max() float64 {
	return r.Ohms * (1 + r.TolerancePercent/100)
}

// Decode computes the resistance encoded by selection under layout.
//
// Every color must be valid for its position as reported by IsValidFor;
// mismatches are rejected rather than decoded.
func Decode(layout Layout, selection Selection) (Result, error) {
	if len(layout) == 0 {
		return Result{}, newBandCountError(0)
	}
	if len(selection) != len(layout) {
		return Result{}, newLengthError(len(layout), len(selection))
	}

	colors := make([]Color, len(selection))
	for i, name := range selection {
		c, err := Lookup(name)
		if err != nil {
			return Result{}, err
		}
		if !validFor(layout[i], c) {
			return Result{}, newRoleMismatchError(i, layout[i], c.Name)
		}
		colors[i] = c
	}

	var digits strings.Builder
	digits.Grow(layout.Digits())
	result := Result{TolerancePercent: DefaultTolerance}
	scale := 1.0

	for i, role := range layout {
		c := colors[i]
		switch role.Kind {
		case RoleDigit:
			digit, _ := c.Digit()
			digits.WriteString(strconv.Itoa(digit))
		case RoleMultiplier:
			scale, _ = c.Multiplier()
		case RoleTolerance:
			result.TolerancePercent, _ = c.Tolerance()
		case RoleTempCoeff:
			ppm, _ := c.TempCoeff()
			result.TempCoeffPPM = &ppm
		}
	}

	significant, err := strconv.ParseUint(digits.String(), 10, 64)
	if err != nil {
		return Result{}, newDomainError(ErrCodeBandCount, "layout has no digit bands", nil)
	}

	result.Ohms = float64(significant) * scale
	return result, nil
}

// DecodeColors resolves the layout from the number of colors and decodes
// them.
func DecodeColors(selection Selection) (Result, error) {
	layout, err := LayoutFor(len(selection))
	if err != nil {
		return Result{}, err
	}
	return Decode(layout, selection)
}
