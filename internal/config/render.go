package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/banshee-data/endfed/internal/fsutil"
)

// Render defaults. The figure geometry matches a short, wide strip chart.
const (
	DefaultWidthInches  = 8.0
	DefaultHeightInches = 1.25
	DefaultDPI          = 120
	DefaultFillColor    = "#ff0000"
	DefaultTheme        = "white"
	DefaultAssetsHost   = "https://go-echarts.github.io/go-echarts-assets/assets/"
)

const maxConfigSize = 1 * 1024 * 1024 // 1MB

// RenderConfig holds chart output settings. Nil fields fall back to the
// defaults above through the Get* methods, so partial files are safe.
type RenderConfig struct {
	WidthInches  *float64 `json:"width_inches,omitempty"`
	HeightInches *float64 `json:"height_inches,omitempty"`
	DPI          *int     `json:"dpi,omitempty"`
	FillColor    *string  `json:"fill_color,omitempty"` // "#rrggbb"
	Grid         *bool    `json:"grid,omitempty"`

	// HTML output only
	Theme      *string `json:"theme,omitempty"`
	AssetsHost *string `json:"assets_host,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// DefaultRenderConfig returns a RenderConfig with every field populated.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		WidthInches:  ptrFloat64(DefaultWidthInches),
		HeightInches: ptrFloat64(DefaultHeightInches),
		DPI:          ptrInt(DefaultDPI),
		FillColor:    ptrString(DefaultFillColor),
		Grid:         ptrBool(true),
		Theme:        ptrString(DefaultTheme),
		AssetsHost:   ptrString(DefaultAssetsHost),
	}
}

// LoadRenderConfig loads a RenderConfig from a JSON file. Comments and
// trailing commas are accepted (JSONC). The file must have a .json or
// .jsonc extension and be under 1MB.
func LoadRenderConfig(fsys fsutil.FileSystem, path string) (*RenderConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" && ext != ".jsonc" {
		return nil, fmt.Errorf("config file must have .json or .jsonc extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxConfigSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RenderConfig{}
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *RenderConfig) Validate() error {
	if c.WidthInches != nil && (*c.WidthInches <= 0 || *c.WidthInches > 100) {
		return fmt.Errorf("width_inches must be in (0, 100], got %f", *c.WidthInches)
	}
	if c.HeightInches != nil && (*c.HeightInches <= 0 || *c.HeightInches > 100) {
		return fmt.Errorf("height_inches must be in (0, 100], got %f", *c.HeightInches)
	}
	if c.DPI != nil && (*c.DPI < 10 || *c.DPI > 1200) {
		return fmt.Errorf("dpi must be between 10 and 1200, got %d", *c.DPI)
	}
	if c.FillColor != nil {
		if _, err := ParseHexColor(*c.FillColor); err != nil {
			return fmt.Errorf("invalid fill_color: %w", err)
		}
	}
	if c.Theme != nil && strings.TrimSpace(*c.Theme) == "" {
		return fmt.Errorf("theme must not be empty")
	}
	return nil
}

// GetWidthInches returns the width_inches value or the default.
func (c *RenderConfig) GetWidthInches() float64 {
	if c.WidthInches == nil {
		return DefaultWidthInches
	}
	return *c.WidthInches
}

// GetHeightInches returns the height_inches value or the default.
func (c *RenderConfig) GetHeightInches() float64 {
	if c.HeightInches == nil {
		return DefaultHeightInches
	}
	return *c.HeightInches
}

// GetDPI returns the dpi value or the default.
func (c *RenderConfig) GetDPI() int {
	if c.DPI == nil {
		return DefaultDPI
	}
	return *c.DPI
}

// GetFillColor returns the fill colour, falling back to the default on a
// missing or unparsable value.
func (c *RenderConfig) GetFillColor() color.RGBA {
	if c.FillColor != nil {
		if rgba, err := ParseHexColor(*c.FillColor); err == nil {
			return rgba
		}
	}
	rgba, _ := ParseHexColor(DefaultFillColor)
	return rgba
}

// GetFillColorHex returns the fill colour as "#rrggbb".
func (c *RenderConfig) GetFillColorHex() string {
	rgba := c.GetFillColor()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// GetGrid returns the grid value or the default.
func (c *RenderConfig) GetGrid() bool {
	if c.Grid == nil {
		return true
	}
	return *c.Grid
}

// GetTheme returns the theme value or the default.
func (c *RenderConfig) GetTheme() string {
	if c.Theme == nil {
		return DefaultTheme
	}
	return *c.Theme
}

// GetAssetsHost returns the assets_host value or the default.
func (c *RenderConfig) GetAssetsHost() string {
	if c.AssetsHost == nil || *c.AssetsHost == "" {
		return DefaultAssetsHost
	}
	return *c.AssetsHost
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q must be #rrggbb or #rgb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
