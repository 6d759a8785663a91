// Package config loads the pixdemo canvas configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pixgeom"
	"github.com/gogpu/pixgeom/clip"
	"github.com/gogpu/pixgeom/raster"
	"github.com/gogpu/pixgeom/scene"
)

// Canvas describes the output image.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Scale is the integer upscale factor applied when writing the image.
	Scale int `toml:"scale"`
}

// Render holds the algorithm choices and the optional clip window.
type Render struct {
	Line raster.LineAlgorithm `toml:"line"`
	Clip clip.Algorithm       `toml:"clip"`
	// Window is xmin, ymin, xmax, ymax. Empty disables clipping.
	Window []float64 `toml:"window,omitempty"`
}

// Style holds the canvas colours.
type Style struct {
	Background pixgeom.RGBA `toml:"background"`
	Ink        pixgeom.RGBA `toml:"ink"`
	Highlight  pixgeom.RGBA `toml:"highlight"`
	Frame      pixgeom.RGBA `toml:"frame"`
}

// Config holds the demo configuration.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Render Render `toml:"render"`
	Style  Style  `toml:"style"`
}

// New creates a new Config with defaults.
func New() *Config {
	st := scene.DefaultStyle()
	return &Config{
		Canvas: Canvas{Width: 200, Height: 150, Scale: 4},
		Render: Render{Line: raster.LineBresenham, Clip: clip.AlgCohenSutherland},
		Style: Style{
			Background: st.Background,
			Ink:        st.Ink,
			Highlight:  st.Highlight,
			Frame:      st.Frame,
		},
	}
}

// Parse reads a TOML configuration from r. Keys missing from r keep their
// default values; unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration at path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the canvas size and the clip window.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Scale < 1 {
		return fmt.Errorf("config: canvas scale %d must be at least 1", c.Canvas.Scale)
	}
	if n := len(c.Render.Window); n != 0 && n != 4 {
		return fmt.Errorf("config: render window needs 4 values, got %d", n)
	}
	return nil
}

// Window returns the configured clip window, or nil when none is set.
// The two corners may be given in any order.
func (c *Config) Window() *clip.Rect {
	if len(c.Render.Window) != 4 {
		return nil
	}
	w := c.Render.Window
	r := clip.RectFromCorners(pixgeom.Pt(w[0], w[1]), pixgeom.Pt(w[2], w[3]))
	return &r
}

// SceneStyle converts the colours for scene.Draw.
func (c *Config) SceneStyle() scene.Style {
	return scene.Style{
		Background: c.Style.Background,
		Ink:        c.Style.Ink,
		Highlight:  c.Style.Highlight,
		Frame:      c.Style.Frame,
	}
}

// String returns the configuration in TOML form.
func (c *Config) String() string {
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("# %v\n", err)
	}
	return string(b)
}
