// Package config loads deviation scale settings from TOML.
//
// A config file sets any subset of the keys below. Missing keys keep their
// defaults from [Default]:
//
//	orientation = "horizontal"
//	position = -12
//	width = 2200
//	height = 1100
//	labels = ["50", "40", "30", "20", "10", "0", "-10", "-20", "-30", "-40", "-50"]
//
//	[colors]
//	central = "#D32F2F"
//	contour = "#212121"   # pointer follows contour unless set
//
//	[visibility]
//	pointer = true
//
//	[measure]
//	min_width = 110
//	min_height = 220
//	padding = [4, 4, 4, 4]
//
// Unknown keys are rejected so typos do not go unnoticed. A position
// outside [-50, 50] is clamped with a warning.
package config

import (
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/deviationview/pkg/errors"
	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/style"
	"github.com/matzehuels/deviationview/pkg/view"
)

// Default frame size: the proportions of a tall phone widget.
const (
	DefaultWidth  = 1100
	DefaultHeight = 2200
)

// Config is the file representation of a view.
type Config struct {
	Orientation string     `toml:"orientation"`
	Position    int        `toml:"position"`
	Width       int        `toml:"width"`
	Height      int        `toml:"height"`
	Labels      []string   `toml:"labels"`
	Colors      Colors     `toml:"colors"`
	Visibility  Visibility `toml:"visibility"`
	Measure     Measure    `toml:"measure"`
}

// Colors holds one colour string per role, in any format ParseColor accepts.
type Colors struct {
	Background string `toml:"background"`
	Central    string `toml:"central"`
	Frontier   string `toml:"frontier"`
	Contour    string `toml:"contour"`
	Font       string `toml:"font"`
	Pointer    string `toml:"pointer"`
}

// Visibility toggles optional elements.
type Visibility struct {
	Pointer bool `toml:"pointer"`
	Contour bool `toml:"contour"`
}

// Measure feeds view.Measure.
type Measure struct {
	MinWidth  int   `toml:"min_width"`
	MinHeight int   `toml:"min_height"`
	Padding   []int `toml:"padding"` // left, top, right, bottom
}

// Default returns the built-in configuration.
func Default() *Config {
	p := style.DefaultPalette()
	return &Config{
		Orientation: gauge.Vertical.String(),
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Labels:      slices.Clone(style.DefaultLabels),
		Colors: Colors{
			Background: p.Background.String(),
			Central:    p.Central.String(),
			Frontier:   p.Frontier.String(),
			Contour:    p.Contour.String(),
			Font:       p.Font.String(),
			Pointer:    p.Pointer.String(),
		},
		Measure: Measure{Padding: []int{0, 0, 0, 0}},
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if md.IsDefined("colors", "contour") && !md.IsDefined("colors", "pointer") {
		cfg.Colors.Pointer = cfg.Colors.Contour
	}
	if p := gauge.Clamp(cfg.Position); p != cfg.Position {
		log.Warn("position clamped", "position", cfg.Position, "clamped", p)
		cfg.Position = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field. Positions are not checked; the view clamps
// them.
func (c *Config) Validate() error {
	if _, err := gauge.ParseOrientation(c.Orientation); err != nil {
		return err
	}
	if err := errors.ValidateDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if err := errors.ValidateLabels(c.Labels); err != nil {
		return err
	}
	if _, err := c.palette(); err != nil {
		return err
	}
	if c.Measure.MinWidth < 0 || c.Measure.MinHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "minimum size must not be negative")
	}
	if n := len(c.Measure.Padding); n != 0 && n != 4 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding needs 4 values (left, top, right, bottom), got %d", n)
	}
	for _, p := range c.Measure.Padding {
		if p < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "padding must not be negative")
		}
	}
	return nil
}

func (c *Config) palette() (style.Palette, error) {
	var p style.Palette
	for _, e := range []struct {
		role  style.Role
		value string
	}{
		{style.RoleBackground, c.Colors.Background},
		{style.RoleCentral, c.Colors.Central},
		{style.RoleFrontier, c.Colors.Frontier},
		{style.RoleContour, c.Colors.Contour},
		{style.RoleFont, c.Colors.Font},
		{style.RolePointer, c.Colors.Pointer},
	} {
		col, err := style.ParseColor(e.value)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidColor, err, "colors.%s", e.role)
		}
		p = p.With(e.role, col)
	}
	return p, nil
}

// ParsedOrientation returns the parsed orientation. Call Validate first.
func (c *Config) ParsedOrientation() gauge.Orientation {
	o, _ := gauge.ParseOrientation(c.Orientation)
	return o
}

// Style builds the style value.
func (c *Config) Style() (style.Style, error) {
	p, err := c.palette()
	if err != nil {
		return style.Style{}, err
	}
	return style.Default().
		WithPalette(p).
		WithLabels(c.Labels).
		WithPointerVisible(c.Visibility.Pointer).
		WithContourVisible(c.Visibility.Contour), nil
}

// NewView creates a view from c and sizes it. opts are applied after the
// config-derived options.
func (c *Config) NewView(opts ...view.Option) (*view.View, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := c.Style()
	if err != nil {
		return nil, err
	}

	base := []view.Option{
		view.WithStyle(s),
		view.WithPosition(c.Position),
		view.WithMinimumSize(c.Measure.MinWidth, c.Measure.MinHeight),
	}
	if pad := c.Measure.Padding; len(pad) == 4 {
		base = append(base, view.WithPadding(pad[0], pad[1], pad[2], pad[3]))
	}

	v := view.New(c.ParsedOrientation(), append(base, opts...)...)
	if err := v.Resize(c.Width, c.Height); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode writes c as TOML.
func Encode(w io.Writer, c *Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}
