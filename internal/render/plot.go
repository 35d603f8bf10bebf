package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/endfed/internal/config"
)

// PlotRenderer draws charts with gonum/plot. Format is a file extension
// without the dot ("png", "svg", "pdf", ...).
type PlotRenderer struct {
	Format string
	Config *config.RenderConfig
}

// Render draws one filled rectangle per span across the full height of the
// strip, with the Y axis hidden and the X axis fixed to the chart bounds.
func (r *PlotRenderer) Render(w io.Writer, c Chart) error {
	cfg := r.Config
	if cfg == nil {
		cfg = config.DefaultRenderConfig()
	}

	p, err := r.build(c, cfg)
	if err != nil {
		return err
	}

	width := vg.Length(cfg.GetWidthInches()) * vg.Inch
	height := vg.Length(cfg.GetHeightInches()) * vg.Inch

	var wt io.WriterTo
	switch r.Format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		// Raster output honours the configured DPI.
		canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(cfg.GetDPI()))
		p.Draw(draw.New(canvas))
		switch r.Format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: canvas}
		case "jpg", "jpeg":
			wt = vgimg.JpegCanvas{Canvas: canvas}
		default:
			wt = vgimg.TiffCanvas{Canvas: canvas}
		}
	default:
		wt, err = p.WriterTo(width, height, r.Format)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
	}

	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", r.Format, err)
	}
	return nil
}

func (r *PlotRenderer) build(c Chart, cfg *config.RenderConfig) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.UnitLabel
	p.HideY()

	if cfg.GetGrid() {
		p.Add(plotter.NewGrid())
	}

	fill := cfg.GetFillColor()
	for i, span := range c.Spans {
		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: span[0], Y: 0},
			{X: span[0], Y: 1},
			{X: span[1], Y: 1},
			{X: span[1], Y: 0},
		})
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		rect.Color = fill
		rect.LineStyle.Color = fill
		p.Add(rect)
	}

	// Add widens the axes to fit the data; pin them afterwards.
	p.X.Min, p.X.Max = c.Lower, c.Upper
	p.Y.Min, p.Y.Max = 0, 1
	return p, nil
}
