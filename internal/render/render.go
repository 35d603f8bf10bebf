// Package render draws an overlay geometry as a strip of filled length ranges.
//
// Renderers consume a Chart, a plain copy of the numbers they need, and hold no
// reference back into the calculation packages.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/banshee-data/endfed/internal/config"
	"github.com/banshee-data/endfed/internal/fsutil"
	"github.com/banshee-data/endfed/internal/monitoring"
	"github.com/banshee-data/endfed/internal/overlay"
	"github.com/banshee-data/endfed/internal/units"
)

// ErrUnsupportedFormat is returned for output paths with no matching renderer.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Chart is everything a renderer needs to draw one figure.
type Chart struct {
	Title     string
	Spans     [][2]float64 // one filled rectangle per (start, end)
	UnitLabel string
	Lower     float64 // horizontal axis bounds
	Upper     float64
}

// FromGeometry copies g into a Chart.
func FromGeometry(g overlay.Geometry) Chart {
	lower, upper := g.Bounds()
	return Chart{
		Title:     g.Title,
		Spans:     g.Spans(),
		UnitLabel: units.Label(g.Unit),
		Lower:     lower,
		Upper:     upper,
	}
}

// Renderer writes a chart to w in a single format.
type Renderer interface {
	Render(w io.Writer, c Chart) error
}

// plotFormats are the extensions gonum/plot can encode.
var plotFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true, "tex": true,
}

// ForFile picks a renderer from the extension of path.
func ForFile(path string, cfg *config.RenderConfig) (Renderer, error) {
	if cfg == nil {
		cfg = config.DefaultRenderConfig()
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch {
	case ext == "html" || ext == "htm":
		return &EChartsRenderer{Config: cfg}, nil
	case plotFormats[ext]:
		return &PlotRenderer{Format: ext, Config: cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// WriteFile renders c into path, creating parent directories as needed.
func WriteFile(fsys fsutil.FileSystem, path string, r Renderer, c Chart) (err error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := r.Render(f, c); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	monitoring.Debugf("wrote %d spans to %s", len(c.Spans), path)
	return nil
}
