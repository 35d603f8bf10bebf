package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/endfed/internal/config"
)

// minHTMLHeightPx keeps the title and axis readable in a browser.
const minHTMLHeightPx = 200

// EChartsRenderer writes an interactive HTML page using go-echarts. Each span
// becomes a mark area covering the full vertical extent of the chart.
type EChartsRenderer struct {
	Config *config.RenderConfig
}

// Render writes the chart as a standalone HTML document.
func (r *EChartsRenderer) Render(w io.Writer, c Chart) error {
	cfg := r.Config
	if cfg == nil {
		cfg = config.DefaultRenderConfig()
	}

	dpi := float64(cfg.GetDPI())
	widthPx := int(cfg.GetWidthInches() * dpi)
	heightPx := int(cfg.GetHeightInches() * dpi)
	if heightPx < minHTMLHeightPx {
		heightPx = minHTMLHeightPx
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  c.Title,
			Theme:      cfg.GetTheme(),
			Width:      fmt.Sprintf("%dpx", widthPx),
			Height:     fmt.Sprintf("%dpx", heightPx),
			AssetsHost: cfg.GetAssetsHost(),
		}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:         "value",
			Name:         c.UnitLabel,
			NameLocation: "middle",
			NameGap:      25,
			Min:          c.Lower,
			Max:          c.Upper,
			SplitLine:    &opts.SplitLine{Show: opts.Bool(cfg.GetGrid())},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Show: opts.Bool(false),
			Min:  0,
			Max:  1,
		}),
	)

	areas := make([][]opts.MarkAreaData, len(c.Spans))
	for i, span := range c.Spans {
		areas[i] = []opts.MarkAreaData{{XAxis: span[0]}, {XAxis: span[1]}}
	}

	// The series itself is an invisible baseline that anchors the value axis.
	baseline := []opts.LineData{
		{Value: []interface{}{c.Lower, 0}, Symbol: "none"},
		{Value: []interface{}{c.Upper, 0}, Symbol: "none"},
	}
	line.AddSeries("lengths", baseline,
		charts.WithMarkAreaData(areas...),
		charts.WithMarkAreaStyleOpts(opts.MarkAreaStyle{
			ItemStyle: &opts.ItemStyle{Color: cfg.GetFillColorHex()},
		}),
	)

	return line.Render(w)
}
