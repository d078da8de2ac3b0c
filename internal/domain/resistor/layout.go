package resistor

// RoleKind is the job a band position performs.
type RoleKind string

const (
	RoleDigit      RoleKind = "digit"
	RoleMultiplier RoleKind = "multiplier"
	RoleTolerance  RoleKind = "tolerance"
	RoleTempCoeff  RoleKind = "tempCoeff"
)

// Facet returns the color facet a band of this kind reads.
func (k RoleKind) Facet() Facet {
	switch k {
	case RoleDigit:
		return FacetDigit
	case RoleMultiplier:
		return FacetMultiplier
	case RoleTolerance:
		return FacetTolerance
	case RoleTempCoeff:
		return FacetTempCoeff
	default:
		return 0
	}
}

// Role describes one band position. AllowZero only applies to digit bands;
// it is false for the leading digit.
type Role struct {
	Name      string
	Kind      RoleKind
	AllowZero bool
}

// Layout is the ordered list of band roles for one band count.
type Layout []Role

// BandCount returns the number of bands in the layout.
func (l Layout) BandCount() int {
	return len(l)
}

// Digits returns the number of significant-digit bands.
func (l Layout) Digits() int {
	n := 0
	for _, role := range l {
		if role.Kind == RoleDigit {
			n++
		}
	}
	return n
}

// Selection is one color per layout position.
type Selection []ColorName

var (
	firstDigit  = Role{Name: "1st Digit", Kind: RoleDigit, AllowZero: false}
	secondDigit = Role{Name: "2nd Digit", Kind: RoleDigit, AllowZero: true}
	thirdDigit  = Role{Name: "3rd Digit", Kind: RoleDigit, AllowZero: true}
	multiplier  = Role{Name: "Multiplier", Kind: RoleMultiplier}
	tolerance   = Role{Name: "Tolerance", Kind: RoleTolerance}
	tempCoeff   = Role{Name: "Temp. Coeff.", Kind: RoleTempCoeff}
)

var supportedBandCounts = []int{3, 4, 5, 6}

var layouts = map[int]Layout{
	3: {firstDigit, secondDigit, multiplier},
	4: {firstDigit, secondDigit, multiplier, tolerance},
	5: {firstDigit, secondDigit, thirdDigit, multiplier, tolerance},
	6: {firstDigit, secondDigit, thirdDigit, multiplier, tolerance, tempCoeff},
}

var defaultSelections = map[int]Selection{
	3: {Green, Red, Blue},
	4: {Green, Red, Blue, Gold},
	5: {Green, Red, Black, Orange, Gold},
	6: {Green, Red, Black, Orange, Gold, Brown},
}

// BandCounts returns the supported band counts in ascending order.
func BandCounts() []int {
	return append([]int(nil), supportedBandCounts...)
}

// LayoutFor returns the band roles for bandCount.
func LayoutFor(bandCount int) (Layout, error) {
	layout, ok := layouts[bandCount]
	if !ok {
		return nil, newBandCountError(bandCount)
	}
	return append(Layout(nil), layout...), nil
}

// DefaultSelection returns the demonstration colors shown when a band
// count is first chosen.
func DefaultSelection(bandCount int) (Selection, error) {
	selection, ok := defaultSelections[bandCount]
	if !ok {
		return nil, newBandCountError(bandCount)
	}
	return append(Selection(nil), selection...), nil
}
