package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/deviationview/pkg/config"
	"github.com/matzehuels/deviationview/pkg/gauge"
)

// gaugeFlags are the flags every gauge-building command shares. They
// override values from the --config file only when set explicitly.
type gaugeFlags struct {
	config      string   // TOML config file
	orientation string   // "vertical" or "horizontal"
	width       int      // frame width in pixels
	height      int      // frame height in pixels
	position    int      // pointer position in [-50, 50]
	pointer     bool     // draw the pointer
	contour     bool     // draw the outline
	labels      []string // label texts, first slot first
}

func (f *gaugeFlags) register(cmd *cobra.Command) {
	d := cliDefaults()
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML config file")
	fs.StringVar(&f.orientation, "orientation", d.Orientation, "gauge orientation: vertical, horizontal")
	fs.IntVar(&f.width, "width", d.Width, "frame width in pixels")
	fs.IntVar(&f.height, "height", d.Height, "frame height in pixels (default swaps with width for horizontal)")
	fs.IntVarP(&f.position, "position", "p", d.Position, "pointer position from -50 to 50")
	fs.BoolVar(&f.pointer, "pointer", d.Visibility.Pointer, "draw the pointer")
	fs.BoolVar(&f.contour, "contour", d.Visibility.Contour, "draw the outline")
	fs.StringSliceVar(&f.labels, "labels", nil, "comma-separated labels, top or left first")
}

// load builds the configuration: the file (or CLI defaults), then any
// flags the user set. The result is validated.
func (f *gaugeFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := cliDefaults()
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("orientation") {
		cfg.Orientation = f.orientation
		if f.config == "" && !fs.Changed("width") && !fs.Changed("height") {
			if o, err := gauge.ParseOrientation(f.orientation); err == nil && o == gauge.Horizontal {
				cfg.Width, cfg.Height = config.DefaultHeight, config.DefaultWidth
			}
		}
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("position") {
		cfg.Position = gauge.Clamp(f.position)
		if cfg.Position != f.position {
			loggerFromContext(cmd.Context()).Warnf("position %d clamped to %d", f.position, cfg.Position)
		}
	}
	if fs.Changed("pointer") {
		cfg.Visibility.Pointer = f.pointer
	}
	if fs.Changed("contour") {
		cfg.Visibility.Contour = f.contour
	}
	if fs.Changed("labels") {
		cfg.Labels = f.labels
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
