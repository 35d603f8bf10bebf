// Package overlay merges per-band harmonic windows into the single bounded
// geometry that a chart draws.
package overlay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/endfed/internal/bands"
	"github.com/banshee-data/endfed/internal/dipole"
	"github.com/banshee-data/endfed/internal/units"
)

// ErrEmptySelection is returned when no bands are selected.
var ErrEmptySelection = errors.New("no bands selected")

// Geometry is the renderer-facing result of one aggregation.
//
// Segments[0] is always the baseline marker (0, Baseline). The remaining
// segments are the per-band harmonic windows in selection order.
type Geometry struct {
	Baseline float64 // quarter-wave of the reference band, lower axis bound
	MaxEdge  float64 // largest segment end, upper axis bound
	Segments []dipole.Segment
	Title    string

	// Unit is the unit every length field is expressed in.
	Unit     string
	Fullwave bool
	// Bands is the selection sorted longest wavelength first.
	Bands []bands.Band
}

// Bounds returns the horizontal axis range.
func (g Geometry) Bounds() (lower, upper float64) {
	return g.Baseline, g.MaxEdge
}

// Spans returns each segment as a (start, end) pair.
func (g Geometry) Spans() [][2]float64 {
	spans := make([][2]float64, len(g.Segments))
	for i, s := range g.Segments {
		spans[i] = [2]float64{s.Start, s.End}
	}
	return spans
}

// Cutoff returns the longest wire length considered for the reference band
// at the given low edge: one half-wave, or two when fullwave is set.
func Cutoff(reference bands.Edge, fullwave bool) float64 {
	if fullwave {
		return 2 * dipole.HalfWaveConstant / reference.Low
	}
	return dipole.HalfWaveFeet(reference.Low)
}

// Aggregate resolves the selected bands and merges their harmonic windows.
//
// The reference band (lowest frequency, i.e. largest designator) supplies
// the quarter-wave baseline and the shared cutoff. Per-band series are
// concatenated in the order the bands were selected, not in sorted order.
// Repeated bands are treated as independent entries.
func Aggregate(selected []bands.Band, fullwave bool) (Geometry, error) {
	if len(selected) == 0 {
		return Geometry{}, ErrEmptySelection
	}

	edges := make([]bands.Edge, len(selected))
	for i, b := range selected {
		edge, err := bands.Lookup(b)
		if err != nil {
			return Geometry{}, err
		}
		edges[i] = edge
	}

	sorted := bands.SortDescending(selected)
	reference, err := bands.Lookup(sorted[0])
	if err != nil {
		return Geometry{}, err
	}

	baseline := dipole.QuarterWaveFeet(reference.Low)
	cutoff := Cutoff(reference, fullwave)

	segments := []dipole.Segment{{Start: 0, End: baseline}}
	for _, edge := range edges {
		segments = append(segments, dipole.Harmonics(edge, cutoff)...)
	}

	ends := make([]float64, len(segments))
	for i, s := range segments {
		ends[i] = s.End
	}

	return Geometry{
		Baseline: baseline,
		MaxEdge:  floats.Max(ends),
		Segments: segments,
		Title:    Title(sorted, fullwave),
		Unit:     units.Feet,
		Fullwave: fullwave,
		Bands:    sorted,
	}, nil
}

// Title builds the chart title, e.g. "High Voltage Lengths for 40, 20 m (half-wave)".
// sorted is used as given.
func Title(sorted []bands.Band, fullwave bool) string {
	parts := make([]string, len(sorted))
	for i, b := range sorted {
		parts[i] = strconv.FormatUint(uint64(b), 10)
	}
	mode := "half-wave"
	if fullwave {
		mode = "full-wave"
	}
	return fmt.Sprintf("High Voltage Lengths for %s m (%s)", strings.Join(parts, ", "), mode)
}
