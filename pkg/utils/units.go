package utils

// ConvertUnit converts a quantity between compatible units.
// Supported: g <-> kg, ml <-> litre. Unknown pairs pass through unchanged.
func ConvertUnit(value float64, fromUnit, toUnit string) float64 {
	if fromUnit == toUnit {
		return value
	}

	switch {
	case fromUnit == "g" && toUnit == "kg":
		return value / 1000.0
	case fromUnit == "kg" && toUnit == "g":
		return value * 1000.0
	case fromUnit == "ml" && toUnit == "litre":
		return value / 1000.0
	case fromUnit == "litre" && toUnit == "ml":
		return value * 1000.0
	}

	return value
}
