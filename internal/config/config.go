// Package config loads the settings of the metaballdemo command from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config describes the demo menu bar and how its transition is rendered.
type Config struct {
	// Items is the number of menu items, laid out left to right.
	Items int `toml:"items"`

	// ItemSize is the side of each square item in pixels.
	ItemSize int `toml:"item_size"`

	// Spacing is the gap between items and around the bar, in pixels.
	Spacing int `toml:"spacing"`

	// Padding is added to half the item size for the selector radius.
	Padding float64 `toml:"padding"`

	Background string `toml:"background"`
	Metaball   string `toml:"metaball"`

	// DurationMS is the transition length in milliseconds.
	DurationMS int `toml:"duration_ms"`
	FPS        int `toml:"fps"`

	// Frames is the number of PNG frames written for one transition.
	Frames int    `toml:"frames"`
	Out    string `toml:"out"`

	// Caption annotates PNG frames with their index and fraction.
	Caption bool `toml:"caption"`

	// Workers is the number of frames rendered at once. Zero uses GOMAXPROCS.
	Workers int `toml:"workers"`
}

// Default returns the built-in settings: five items on a purple bar with a
// white selector and a 500ms transition.
func Default() Config {
	return Config{
		Items:      5,
		ItemSize:   32,
		Spacing:    24,
		Padding:    4,
		Background: "#aa66cc",
		Metaball:   "#ffffff",
		DurationMS: 500,
		FPS:        60,
		Frames:     24,
		Out:        "frames",
		Caption:    true,
	}
}

// Load reads a TOML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that sizes and rates are usable and colors parse.
func (c Config) Validate() error {
	var errs []error
	if c.Items < 1 {
		errs = append(errs, fmt.Errorf("items must be >= 1, got %d", c.Items))
	}
	if c.ItemSize < 1 {
		errs = append(errs, fmt.Errorf("item_size must be >= 1, got %d", c.ItemSize))
	}
	if c.Spacing < 0 {
		errs = append(errs, fmt.Errorf("spacing must be >= 0, got %d", c.Spacing))
	}
	if c.DurationMS < 0 {
		errs = append(errs, fmt.Errorf("duration_ms must be >= 0, got %d", c.DurationMS))
	}
	if c.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps must be >= 1, got %d", c.FPS))
	}
	if c.Frames < 1 {
		errs = append(errs, fmt.Errorf("frames must be >= 1, got %d", c.Frames))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if _, err := parseColor("background", c.Background); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseColor("metaball", c.Metaball); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Colors returns the parsed background and metaball colors.
func (c Config) Colors() (background, metaball color.Color, err error) {
	bg, err := parseColor("background", c.Background)
	if err != nil {
		return nil, nil, err
	}
	fg, err := parseColor("metaball", c.Metaball)
	if err != nil {
		return nil, nil, err
	}
	return bg, fg, nil
}

// Duration returns the transition length.
func (c Config) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// Layout returns the item bounds, vertically centered in the bar.
func (c Config) Layout() []image.Rectangle {
	items := make([]image.Rectangle, c.Items)
	y := c.Spacing
	for i := range items {
		x := c.Spacing + i*(c.ItemSize+c.Spacing)
		items[i] = image.Rect(x, y, x+c.ItemSize, y+c.ItemSize)
	}
	return items
}

// CanvasSize returns the bar size in pixels.
func (c Config) CanvasSize() (width, height int) {
	width = c.Spacing + c.Items*(c.ItemSize+c.Spacing)
	height = c.ItemSize + 2*c.Spacing
	return width, height
}

func parseColor(key, s string) (color.Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
