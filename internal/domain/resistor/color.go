// Package resistor decodes IEC 60062 resistor color bands into a
// resistance, a tolerance and an optional temperature coefficient.
//
// The color registry and the band layout tables are package-level
// constants built at init time; every exported function is pure and safe
// for concurrent use.
package resistor

import (
	"strings"
	"unicode"
)

// ColorName identifies a registry color.
type ColorName string

const (
	Black  ColorName = "black"
	Brown  ColorName = "brown"
	Red    ColorName = "red"
	Orange ColorName = "orange"
	Yellow ColorName = "yellow"
	Green  ColorName = "green"
	Blue   ColorName = "blue"
	Violet ColorName = "violet"
	Grey   ColorName = "grey"
	White  ColorName = "white"
	Gold   ColorName = "gold"
	Silver ColorName = "silver"
)

// Facet is one numeric role a color can play on a resistor body.
type Facet uint8

const (
	FacetDigit Facet = 1 << iota
	FacetMultiplier
	FacetTolerance
	FacetTempCoeff
)

// Color is an immutable registry entry. A facet that is not set means the
// color cannot be used for bands of that role.
type Color struct {
	Name ColorName
	Hex  string

	facets     Facet
	digit      int
	multiplier float64
	tolerance  float64
	tempCoeff  float64
}

// Has reports whether the color supplies the given facet.
func (c Color) Has(f Facet) bool {
	return c.facets&f == f
}

// Digit returns the significant digit encoded by the color.
func (c Color) Digit() (int, bool) {
	return c.digit, c.Has(FacetDigit)
}

// Multiplier returns the power-of-ten scale factor encoded by the color.
func (c Color) Multiplier() (float64, bool) {
	return c.multiplier, c.Has(FacetMultiplier)
}

// Tolerance returns the tolerance in percent encoded by the color.
func (c Color) Tolerance() (float64, bool) {
	return c.tolerance, c.Has(FacetTolerance)
}

// TempCoeff returns the temperature coefficient in ppm/K encoded by the color.
func (c Color) TempCoeff() (float64, bool) {
	return c.tempCoeff, c.Has(FacetTempCoeff)
}

// Metallic reports whether the band is printed with metallic ink.
func (c Color) Metallic() bool {
	return c.Name == Gold || c.Name == Silver
}

// Abbrev returns the short swatch label, e.g. "Bla" for black.
func (c Color) Abbrev() string {
	name := []rune(string(c.Name))
	if len(name) > 3 {
		name = name[:3]
	}
	if len(name) > 0 {
		name[0] = unicode.ToUpper(name[0])
	}
	return string(name)
}

// entry builds a registry color. Values for facets missing from the mask
// are ignored.
func entry(name ColorName, hex string, facets Facet, digit int, multiplier, tolerance, tempCoeff float64) Color {
	return Color{
		Name:       name,
		Hex:        hex,
		facets:     facets,
		digit:      digit,
		multiplier: multiplier,
		tolerance:  tolerance,
		tempCoeff:  tempCoeff,
	}
}

const (
	dm   = FacetDigit | FacetMultiplier
	dmc  = dm | FacetTempCoeff
	dmtc = dm | FacetTolerance | FacetTempCoeff
	mt   = FacetMultiplier | FacetTolerance
)

// registry lists every color in swatch order.
var registry = []Color{
	entry(Black, "#1a1a1a", dmc, 0, 1, 0, 250),
	entry(Brown, "#8B4513", dmtc, 1, 10, 1, 100),
	entry(Red, "#DC2626", dmtc, 2, 100, 2, 50),
	entry(Orange, "#F97316", dmc, 3, 1e3, 0, 15),
	entry(Yellow, "#FACC15", dmc, 4, 1e4, 0, 25),
	entry(Green, "#22C55E", dmtc, 5, 1e5, 0.5, 20),
	entry(Blue, "#3B82F6", dmtc, 6, 1e6, 0.25, 10),
	entry(Violet, "#8B5CF6", dmtc, 7, 1e7, 0.1, 5),
	entry(Grey, "#6B7280", dmtc, 8, 1e8, 0.05, 1),
	entry(White, "#F8FAFC", dm, 9, 1e9, 0, 0),
	entry(Gold, "#D4AF37", mt, 0, 0.1, 5, 0),
	entry(Silver, "#C0C0C0", mt, 0, 0.01, 10, 0),
}

var aliases = map[string]ColorName{
	"gray":   Grey,
	"purple": Violet,
}

// registryIndex maps each color name to its position in registry.
var registryIndex = func() map[ColorName]int {
	m := make(map[ColorName]int, len(registry))
	for i, c := range registry {
		m[c.Name] = i
	}
	return m
}()

// ParseColorName normalizes user input into a registry color name.
func ParseColorName(s string) (ColorName, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := aliases[key]; ok {
		return alias, nil
	}
	name := ColorName(key)
	if _, ok := registryIndex[name]; !ok {
		return "", newUnknownColorError(s)
	}
	return name, nil
}

// Lookup returns the registry entry for name.
func Lookup(name ColorName) (Color, error) {
	normalized, err := ParseColorName(string(name))
	if err != nil {
		return Color{}, err
	}
	return registry[registryIndex[normalized]], nil
}

// Colors returns the registry in swatch order.
func Colors() []Color {
	out := make([]Color, len(registry))
	copy(out, registry)
	return out
}

// Names returns every color name in swatch order.
func Names() []ColorName {
	out := make([]ColorName, len(registry))
	for i, c := range registry {
		out[i] = c.Name
	}
	return out
}
