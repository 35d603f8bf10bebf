package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/endfed/internal/bands"
	"github.com/banshee-data/endfed/internal/config"
	"github.com/banshee-data/endfed/internal/fsutil"
	"github.com/banshee-data/endfed/internal/overlay"
)

func sampleChart() Chart {
	return Chart{
		Title:     "High Voltage Lengths for 40 m (half-wave)",
		Spans:     [][2]float64{{0, 5.85}, {6.5, 11.7}, {13, 23.4}},
		UnitLabel: "Wire Length (ft)",
		Lower:     5.85,
		Upper:     23.4,
	}
}

func TestFromGeometry(t *testing.T) {
	g, err := overlay.Aggregate([]bands.Band{40}, false)
	require.NoError(t, err)

	c := FromGeometry(g)
	assert.Equal(t, g.Title, c.Title)
	assert.Equal(t, "Wire Length (ft)", c.UnitLabel)
	assert.Equal(t, g.Baseline, c.Lower)
	assert.Equal(t, g.MaxEdge, c.Upper)
	require.Len(t, c.Spans, len(g.Segments))
	assert.Equal(t, [2]float64{0, 5.85}, c.Spans[0])

	m := FromGeometry(overlay.ToDisplayUnits(g, true))
	assert.Equal(t, "Wire Length (m)", m.UnitLabel)
}

func TestForFile(t *testing.T) {
	tests := []struct {
		path string
		want Renderer
	}{
		{"out.png", &PlotRenderer{Format: "png"}},
		{"out.PNG", &PlotRenderer{Format: "png"}},
		{"dir/out.svg", &PlotRenderer{Format: "svg"}},
		{"out.pdf", &PlotRenderer{Format: "pdf"}},
		{"out.jpeg", &PlotRenderer{Format: "jpeg"}},
		{"out.html", &EChartsRenderer{}},
		{"out.htm", &EChartsRenderer{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, err := ForFile(tt.path, nil)
			require.NoError(t, err)

			// Config is always populated; compare the rest.
			switch got := r.(type) {
			case *PlotRenderer:
				require.NotNil(t, got.Config)
				got.Config = nil
			case *EChartsRenderer:
				require.NotNil(t, got.Config)
				got.Config = nil
			}
			if diff := cmp.Diff(tt.want, r); diff != "" {
				t.Errorf("ForFile(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestForFile_Unsupported(t *testing.T) {
	for _, path := range []string{"out.gif", "out", "out.txt"} {
		_, err := ForFile(path, config.DefaultRenderConfig())
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "path %q", path)
	}
}

func TestPlotRenderer_PNG(t *testing.T) {
	var buf bytes.Buffer
	r := &PlotRenderer{Format: "png", Config: config.DefaultRenderConfig()}
	require.NoError(t, r.Render(&buf, sampleChart()))

	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), buf.Bytes()[:8])
}

func TestPlotRenderer_SVG(t *testing.T) {
	var buf bytes.Buffer
	r := &PlotRenderer{Format: "svg"}
	require.NoError(t, r.Render(&buf, sampleChart()))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Wire Length (ft)")
}

func TestPlotRenderer_PDF(t *testing.T) {
	var buf bytes.Buffer
	r := &PlotRenderer{Format: "pdf"}
	require.NoError(t, r.Render(&buf, sampleChart()))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
}

func TestPlotRenderer_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	r := &PlotRenderer{Format: "gif"}
	err := r.Render(&buf, sampleChart())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestPlotRenderer_NoSpans(t *testing.T) {
	var buf bytes.Buffer
	r := &PlotRenderer{Format: "svg"}
	c := sampleChart()
	c.Spans = nil
	assert.NoError(t, r.Render(&buf, c))
}

func TestEChartsRenderer(t *testing.T) {
	cfg := config.DefaultRenderConfig()
	*cfg.FillColor = "#00ff00"

	var buf bytes.Buffer
	r := &EChartsRenderer{Config: cfg}
	require.NoError(t, r.Render(&buf, sampleChart()))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "High Voltage Lengths for 40 m (half-wave)")
	assert.Contains(t, out, "markArea")
	assert.Contains(t, out, "#00ff00")
	assert.Contains(t, out, "Wire Length (ft)")
}

func TestWriteFile(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	r := &PlotRenderer{Format: "svg"}

	require.NoError(t, WriteFile(fsys, "charts/out.svg", r, sampleChart()))

	data, err := fsys.ReadFile("charts/out.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	info, err := fsys.Stat("charts")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteFile_CreateFails(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	require.NoError(t, fsys.MkdirAll("taken.svg", 0755))

	err := WriteFile(fsys, "taken.svg", &PlotRenderer{Format: "svg"}, sampleChart())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create taken.svg")
}

func TestWriteFile_RenderError(t *testing.T) {
	fsys := fsutil.NewMemoryFileSystem()
	err := WriteFile(fsys, "out.gif", &PlotRenderer{Format: "gif"}, sampleChart())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
