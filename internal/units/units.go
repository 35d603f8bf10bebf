// Package units provides shared constants, validation and conversion for wire length units
package units

import "fmt"

// Unit constants
const (
	Feet   = "ft"
	Meters = "m"
)

// FeetToMeters is the display conversion factor. It is the inch/meter
// approximation 12/39.37, not the exact 0.3048, and output depends on it.
const FeetToMeters = 12.0 / 39.37

// ValidUnits contains all valid unit values
var ValidUnits = []string{Feet, Meters}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ConvertLength converts a length in feet to the target units.
// All computation happens in feet; conversion is a display concern.
func ConvertLength(lengthFeet float64, targetUnits string) float64 {
	switch targetUnits {
	case Meters:
		return lengthFeet * FeetToMeters
	case Feet:
		return lengthFeet
	default:
		return lengthFeet // default to feet if unknown unit
	}
}

// Factor returns the multiplier ConvertLength applies for targetUnits.
func Factor(targetUnits string) float64 {
	return ConvertLength(1, targetUnits)
}

// Label returns the horizontal axis label for a chart in the given units.
func Label(unit string) string {
	if !IsValid(unit) {
		unit = Feet
	}
	return fmt.Sprintf("Wire Length (%s)", unit)
}
