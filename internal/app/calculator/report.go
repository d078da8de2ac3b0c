package calculator

import (
	"github.com/alexisbeaulieu97/bandcode/internal/domain/resistor"
)

// Report is a decoded resistor together with its display strings.
type Report struct {
	BandCount  int                  `json:"band_count"`
	Colors     []resistor.ColorName `json:"colors"`
	Result     resistor.Result      `json:"result"`
	Resistance resistor.Quantity    `json:"resistance"`
	Tolerance  string               `json:"tolerance"`
	TempCoeff  string               `json:"temp_coeff,omitempty"`
	Range      string               `json:"range"`
}

// NewReport renders result for display.
func NewReport(selection resistor.Selection, result resistor.Result) Report {
	report := Report{
		BandCount:  len(selection),
		Colors:     append([]resistor.ColorName(nil), selection...),
		Result:     result,
		Resistance: resistor.Format(result.Ohms),
		Tolerance:  resistor.FormatTolerance(result.TolerancePercent),
		Range:      resistor.FormatRange(result.Ohms, result.TolerancePercent),
	}
	if result.TempCoeffPPM != nil {
		report.TempCoeff = resistor.FormatTempCoeff(*result.TempCoeffPPM)
	}
	return report
}
