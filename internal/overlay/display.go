package overlay

import (
	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/endfed/internal/dipole"
	"github.com/banshee-data/endfed/internal/units"
)

// ToDisplayUnits returns g with every length field in meters when metric is
// set, and g unchanged otherwise. Title and segment order are untouched and
// the input's segment slice is never modified.
func ToDisplayUnits(g Geometry, metric bool) Geometry {
	if !metric {
		return g
	}
	return scale(g, units.Factor(units.Meters), units.Meters)
}

func scale(g Geometry, factor float64, unit string) Geometry {
	// Flatten to start/end pairs so gonum can scale them in one pass.
	flat := make([]float64, 0, 2*len(g.Segments)+2)
	for _, s := range g.Segments {
		flat = append(flat, s.Start, s.End)
	}
	flat = append(flat, g.Baseline, g.MaxEdge)
	floats.Scale(factor, flat)

	out := g
	out.Segments = make([]dipole.Segment, len(g.Segments))
	for i := range out.Segments {
		out.Segments[i] = dipole.Segment{Start: flat[2*i], End: flat[2*i+1]}
	}
	n := len(flat)
	out.Baseline = flat[n-2]
	out.MaxEdge = flat[n-1]
	out.Unit = unit
	return out
}
