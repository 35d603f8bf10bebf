// Package dipole derives dipole wire lengths and their harmonic high-voltage
// node windows from band edge frequencies.
package dipole

import (
	"math"

	"github.com/banshee-data/endfed/internal/bands"
)

// Length constants in feet·MHz.
const (
	HalfWaveConstant    = 468.0
	QuarterWaveConstant = 234.0
)

// Segment is one harmonic's length window in feet. Start <= End.
type Segment struct {
	Start float64
	End   float64
}

// HalfWaveFeet returns the half-wave dipole length for mhz.
func HalfWaveFeet(mhz float64) float64 {
	return HalfWaveConstant / mhz
}

// QuarterWaveFeet returns the quarter-wave length for mhz.
func QuarterWaveFeet(mhz float64) float64 {
	return QuarterWaveConstant / mhz
}

// HarmonicCount returns how many whole multiples of the band's shortest
// half-wave length fit within maxLengthFeet.
func HarmonicCount(edge bands.Edge, maxLengthFeet float64) int {
	if !(maxLengthFeet > 0) || math.IsInf(maxLengthFeet, 0) {
		return 0
	}
	lenLow := HalfWaveFeet(edge.High)
	if !(lenLow > 0) {
		return 0
	}
	return int(maxLengthFeet / lenLow)
}

// Harmonics returns the high-voltage node windows for edge, one per harmonic,
// up to maxLengthFeet. Segment n spans n times the half-wave length at the
// band's high edge to n times the half-wave length at its low edge.
// A cutoff shorter than the first harmonic yields a nil series.
func Harmonics(edge bands.Edge, maxLengthFeet float64) []Segment {
	n := HarmonicCount(edge, maxLengthFeet)
	if n == 0 {
		return nil
	}

	lenLow := HalfWaveFeet(edge.High)
	lenHigh := HalfWaveFeet(edge.Low)

	series := make([]Segment, n)
	for i := range series {
		k := float64(i + 1)
		series[i] = Segment{Start: k * lenLow, End: k * lenHigh}
	}
	return series
}
