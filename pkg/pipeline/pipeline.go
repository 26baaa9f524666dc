// Package pipeline renders a deviation scale frame into one or more output
// formats.
//
// This is the shared path behind the CLI render command: it validates the
// requested formats, applies defaults and dispatches to the sinks, reporting
// each render through the observability hooks.
//
// # Usage
//
//	opts := pipeline.Options{Formats: []string{"svg", "png"}}
//	if err := opts.ValidateForRender(); err != nil {
//	    return err
//	}
//	artifacts, err := pipeline.Render(ctx, frame, opts)
//	if err != nil {
//	    return err
//	}
//	svg := artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deviationview/pkg/cache"
	"github.com/matzehuels/deviationview/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 1.0

	// DefaultCols and DefaultRows size the text output.
	DefaultCols = 44
	DefaultRows = 22

	// DefaultFontFamily is the SVG label font.
	DefaultFontFamily = "sans-serif"

	// ArtifactTTL bounds how long rendered artifacts stay cached.
	ArtifactTTL = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatText: true,
}

// formatList is ValidFormats in a stable order for messages.
var formatList = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatText}

// =============================================================================
// Options
// =============================================================================

// Options configures a render run.
type Options struct {
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	FontFamily string   `json:"font_family,omitempty"`
	Cols       int      `json:"cols,omitempty"`
	Rows       int      `json:"rows,omitempty"`

	// Cache holds rendered artifacts by frame and options. Nil disables caching.
	Cache  cache.Cache `json:"-"`
	Logger *log.Logger `json:"-"`
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(formatList, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults fills unset fields.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.FontFamily == "" {
		o.FontFamily = DefaultFontFamily
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cache == nil {
		o.Cache = cache.NewNullCache()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender sets defaults and validates the result.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if o.Cols < 0 || o.Rows < 0 {
		return errors.New(errors.ErrCodeInvalidDimensions, "text size must be positive, got %dx%d", o.Cols, o.Rows)
	}
	return nil
}
