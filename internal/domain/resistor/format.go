package resistor

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Quantity is a resistance scaled for display.
type Quantity struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// String renders the value immediately followed by its unit.
func (q Quantity) String() string {
	return q.Value + q.Unit
}

type unitBand struct {
	threshold float64
	scale     float64
	subunit   bool
	unit      string
}

// unitBands is ordered from the largest threshold down. The last entry
// catches everything below one ohm.
var unitBands = []unitBand{
	{threshold: 1e9, scale: 1e9, unit: "GΩ"},
	{threshold: 1e6, scale: 1e6, unit: "MΩ"},
	{threshold: 1e3, scale: 1e3, unit: "kΩ"},
	{threshold: 1, scale: 1, unit: "Ω"},
	{threshold: 0, scale: 1e3, subunit: true, unit: "mΩ"},
}

// Format scales ohms into the largest unit whose threshold it reaches and
// renders the value with at most two decimals.
func Format(ohms float64) Quantity {
	band := unitBands[len(unitBands)-1]
	for _, candidate := range unitBands[:len(unitBands)-1] {
		if ohms >= candidate.threshold {
			band = candidate
			break
		}
	}

	var scaled float64
	if band.subunit {
		scaled = ohms * band.scale
	} else {
		scaled = ohms / band.scale
	}

	return Quantity{Value: trimZeros(toFixed2(scaled)), Unit: band.unit}
}

// FormatRange renders the tolerance band around ohms. The unit is printed
// once when both bounds share it.
func FormatRange(ohms, tolerancePercent float64) string {
	lo := Format(ohms * (1 - tolerancePercent/100))
	hi := Format(ohms * (1 + tolerancePercent/100))

	if lo.Unit == hi.Unit {
		return fmt.Sprintf("%s - %s%s", lo.Value, hi.Value, hi.Unit)
	}
	return fmt.Sprintf("%s%s - %s%s", lo.Value, lo.Unit, hi.Value, hi.Unit)
}

// FormatTolerance renders a tolerance such as "±5%".
func FormatTolerance(percent float64) string {
	return "±" + strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}

// FormatTempCoeff renders a temperature coefficient such as "100 ppm/K".
func FormatTempCoeff(ppm float64) string {
	return strconv.FormatFloat(ppm, 'f', -1, 64) + " ppm/K"
}

// toFixed2 rounds v to two decimals. Values lying exactly halfway between
// two candidates round away from zero.
func toFixed2(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	abs := math.Abs(v)
	if halfwayAtHundredths(abs) {
		exact := new(big.Float).SetPrec(128).SetFloat64(abs)
		exact.Mul(exact, big.NewFloat(100))
		hundredths, _ := exact.Int(nil)
		hundredths.Add(hundredths, big.NewInt(1))
		s := hundredths.String()
		for len(s) < 3 {
			s = "0" + s
		}
		s = s[:len(s)-2] + "." + s[len(s)-2:]
		if v < 0 {
			s = "-" + s
		}
		return s
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// halfwayAtHundredths reports whether v*100 has a fractional part of
// exactly one half. v must be finite and non-negative.
func halfwayAtHundredths(v float64) bool {
	exact := new(big.Float).SetPrec(128).SetFloat64(v)
	exact.Mul(exact, big.NewFloat(100))
	whole, _ := exact.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(exact, new(big.Float).SetPrec(128).SetInt(whole))
	return frac.Cmp(big.NewFloat(0.5)) == 0
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
