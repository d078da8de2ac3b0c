package resistor

// ValidColorsFor returns, in registry order, the colors a band with the
// given role may take.
func ValidColorsFor(role Role) []ColorName {
	var names []ColorName
	for _, c := range registry {
		if validFor(role, c) {
			names = append(names, c.Name)
		}
	}
	return names
}

// IsValidFor reports whether name may be selected for a band with role.
// Unknown colors are never valid.
func IsValidFor(role Role, name ColorName) bool {
	c, err := Lookup(name)
	if err != nil {
		return false
	}
	return validFor(role, c)
}

func validFor(role Role, c Color) bool {
	facet := role.Kind.Facet()
	if facet == 0 || !c.Has(facet) {
		return false
	}
	if role.Kind == RoleDigit && !role.AllowZero {
		digit, _ := c.Digit()
		return digit != 0
	}
	return true
}
