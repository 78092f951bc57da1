// Package config loads the flex command configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Config is the on-disk configuration. Every field has a default, so a
// missing file or a partial file is valid.
type Config struct {
	Measure MeasureConfig `toml:"measure"`
	Render  RenderConfig  `toml:"render"`
	Layout  LayoutConfig  `toml:"layout"`
}

// MeasureConfig tunes the heuristic text measurer.
type MeasureConfig struct {
	LineHeight     int     `toml:"line_height"`
	CharWidthScale float64 `toml:"char_width_scale"`
}

// RenderConfig controls terminal output. A terminal cell stands for
// CellWidth x CellHeight layout pixels.
type RenderConfig struct {
	CellWidth  int  `toml:"cell_width"`
	CellHeight int  `toml:"cell_height"`
	Color      bool `toml:"color"`
}

// LayoutConfig holds the window size used when no flags are given.
type LayoutConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Measure: MeasureConfig{LineHeight: layout.DefaultLineHeight, CharWidthScale: 1},
		Render:  RenderConfig{CellWidth: 8, CellHeight: 16, Color: true},
		Layout:  LayoutConfig{Width: 640, Height: 480},
	}
}

// Load decodes TOML content over the current values.
func (c *Config) Load(content string) error {
	md, err := toml.Decode(content, c)
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return c.Validate()
}

// LoadFile reads path on top of the defaults. A missing file yields the
// defaults; an empty path does too.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Load(string(data)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the renderer and measurer cannot use.
func (c *Config) Validate() error {
	switch {
	case c.Measure.LineHeight <= 0:
		return fmt.Errorf("measure.line_height must be positive, got %d", c.Measure.LineHeight)
	case c.Measure.CharWidthScale <= 0:
		return fmt.Errorf("measure.char_width_scale must be positive, got %g", c.Measure.CharWidthScale)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("render cell size must be positive, got %dx%d", c.Render.CellWidth, c.Render.CellHeight)
	case c.Layout.Width < 0 || c.Layout.Height < 0:
		return fmt.Errorf("layout size must not be negative, got %dx%d", c.Layout.Width, c.Layout.Height)
	}
	return nil
}

// Measurer returns the heuristic measurer described by the configuration.
func (c *Config) Measurer() layout.Measurer {
	return layout.HeuristicMeasurer{
		LineHeight: c.Measure.LineHeight,
		Scale:      c.Measure.CharWidthScale,
	}
}
