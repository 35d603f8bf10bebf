// Package bands holds the fixed table of amateur HF/6m bands and their edge pairs.
package bands

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownBand is returned when a designator is not in the registry.
var ErrUnknownBand = errors.New("unknown band")

// Band is a band designator in meters (40 for the 40m band).
type Band uint

// String returns the designator with its unit suffix, e.g. "40m".
func (b Band) String() string {
	return strconv.FormatUint(uint64(b), 10) + "m"
}

// Edge is the frequency edge pair for a band. Low is never greater than High.
type Edge struct {
	Low  float64
	High float64
}

// registry is written once at init and only read afterwards.
var registry = map[Band]Edge{
	160: {Low: 160, High: 2000},
	80:  {Low: 80, High: 4000},
	60:  {Low: 60, High: 5335},
	40:  {Low: 40, High: 7000},
	30:  {Low: 30, High: 10150},
	20:  {Low: 20, High: 14000},
	17:  {Low: 17, High: 18068},
	15:  {Low: 15, High: 21000},
	12:  {Low: 12, High: 24890},
	10:  {Low: 10, High: 28000},
	6:   {Low: 6, High: 50000},
}

// Lookup returns the edge pair for b.
func Lookup(b Band) (Edge, error) {
	edge, ok := registry[b]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrUnknownBand, uint(b))
	}
	return edge, nil
}

// All returns every registered band, longest wavelength first.
func All() []Band {
	all := make([]Band, 0, len(registry))
	for b := range registry {
		all = append(all, b)
	}
	return SortDescending(all)
}

// SortDescending returns a copy of bs ordered by designator, largest first.
// Repeated designators are kept.
func SortDescending(bs []Band) []Band {
	sorted := make([]Band, len(bs))
	copy(sorted, bs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})
	return sorted
}

// ValidBandsString returns the registered designators comma separated,
// for usage and error messages.
func ValidBandsString() string {
	all := All()
	parts := make([]string, len(all))
	for i, b := range all {
		parts[i] = strconv.FormatUint(uint64(b), 10)
	}
	return strings.Join(parts, ",")
}
