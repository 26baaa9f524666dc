// Package view is the host-facing state of a deviation scale.
//
// A [View] caches the geometry for its current size, holds the pointer
// position and the [style.Style], and hands renderers an immutable
// [Frame]. Size changes recompute all geometry at once. Position changes
// recompute only the pointer segment.
//
// A View has no internal locking. Like a UI widget it expects every call to
// come from the same goroutine.
//
//	v := view.New(gauge.Vertical, view.WithInvalidate(requestRedraw))
//	if err := v.Resize(1100, 2200); err != nil {
//	    return err
//	}
//	v.SetPosition(25)
//	if f, ok := v.Frame(); ok {
//	    render.Draw(canvas, f)
//	}
package view

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/observability"
	"github.com/matzehuels/deviationview/pkg/style"
)

// View is a deviation scale bound to a size, a position and a style.
type View struct {
	orientation gauge.Orientation
	style       style.Style
	position    int

	snap    gauge.Snapshot
	pointer gauge.Line
	sized   bool

	invalidate func()
	logger     *log.Logger

	minWidth, minHeight int
	padding             Padding
}

// Option configures a View at construction.
type Option func(*View)

// WithStyle sets the initial style.
func WithStyle(s style.Style) Option {
	return func(v *View) { v.style = s }
}

// WithPosition sets the initial pointer position. It is clamped.
func WithPosition(pos int) Option {
	return func(v *View) { v.position = gauge.Clamp(pos) }
}

// WithInvalidate registers the callback run after every visible change.
func WithInvalidate(fn func()) Option {
	return func(v *View) { v.invalidate = fn }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithMinimumSize sets the content size reported by Measure.
func WithMinimumSize(width, height int) Option {
	return func(v *View) { v.minWidth, v.minHeight = max(0, width), max(0, height) }
}

// WithPadding adds space around the content when measuring.
func WithPadding(left, top, right, bottom int) Option {
	return func(v *View) { v.padding = Padding{left, top, right, bottom} }
}

// New returns an unsized View. Call Resize before drawing.
func New(o gauge.Orientation, opts ...Option) *View {
	v := &View{
		orientation: o,
		style:       style.Default(),
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Orientation returns the orientation fixed at construction.
func (v *View) Orientation() gauge.Orientation { return v.orientation }

// Style returns the current style value.
func (v *View) Style() style.Style { return v.style }

// Size returns the last valid size, or 0, 0 if the view is unsized.
func (v *View) Size() (width, height int) {
	if !v.sized {
		return 0, 0
	}
	return v.snap.Width, v.snap.Height
}

// Resize recomputes every size-dependent primitive and the pointer. On
// error the cached geometry is dropped, so Frame reports false and nothing
// is drawn until a valid size arrives.
func (v *View) Resize(width, height int) error {
	start := time.Now()
	snap, err := gauge.Compute(width, height, v.orientation)
	observability.Gauge().OnCompute(context.Background(), v.orientation.String(), width, height, time.Since(start), err)
	if err != nil {
		v.sized = false
		v.snap = gauge.Snapshot{}
		v.pointer = gauge.Line{}
		v.logger.Warn("skipping geometry", "width", width, "height", height, "err", err)
		return err
	}

	v.snap = snap
	v.pointer = gauge.PointerLine(v.position, v.orientation, width, height)
	v.sized = true
	v.logger.Debug("geometry recomputed",
		"orientation", v.orientation,
		"width", width,
		"height", height,
		"font", snap.FontSize,
		"stroke", snap.PrimaryStroke)
	v.changed()
	return nil
}

// SetPosition moves the pointer. Values outside [-50, 50] are clamped.
func (v *View) SetPosition(pos int) {
	applied := gauge.Clamp(pos)
	observability.Gauge().OnPointer(context.Background(), pos, applied, applied != pos)
	v.position = applied
	if v.sized {
		v.pointer = gauge.PointerLine(applied, v.orientation, v.snap.Width, v.snap.Height)
	}
	v.logger.Debug("pointer moved", "requested", pos, "position", applied)
	v.changed()
}

// Position returns the clamped pointer position.
func (v *View) Position() int { return v.position }

// SetStyle replaces the whole style.
func (v *View) SetStyle(s style.Style) {
	v.style = s
	v.changed()
}

// SetPointerVisible shows or hides the pointer.
func (v *View) SetPointerVisible(visible bool) {
	v.SetStyle(v.style.WithPointerVisible(visible))
}

// SetContourVisible shows or hides the outline.
func (v *View) SetContourVisible(visible bool) {
	v.SetStyle(v.style.WithContourVisible(visible))
}

// SetColor sets the colour of one role.
func (v *View) SetColor(r style.Role, c style.Color) {
	v.SetStyle(v.style.WithColor(r, c))
}

// SetColorARGB sets the colour of one role from channels.
func (v *View) SetColorARGB(r style.Role, a, red, green, blue int) {
	v.SetColor(r, style.ARGB(a, red, green, blue))
}

// SetBackgroundColor sets the colour of the gauge band.
func (v *View) SetBackgroundColor(c style.Color) { v.SetColor(style.RoleBackground, c) }

// SetCentralColor sets the colour of the zero line.
func (v *View) SetCentralColor(c style.Color) { v.SetColor(style.RoleCentral, c) }

// SetFrontierColor sets the colour of the tolerance zone.
func (v *View) SetFrontierColor(c style.Color) { v.SetColor(style.RoleFrontier, c) }

// SetContourColor sets the colour of the outline and tick marks.
func (v *View) SetContourColor(c style.Color) { v.SetColor(style.RoleContour, c) }

// SetFontColor sets the label colour.
func (v *View) SetFontColor(c style.Color) { v.SetColor(style.RoleFont, c) }

// SetPointerColor sets the pointer colour.
func (v *View) SetPointerColor(c style.Color) { v.SetColor(style.RolePointer, c) }

// SetLabels replaces the label set. Labels are given top to bottom; a
// horizontal view draws them right to left, so the first label ends up
// at the right end.
func (v *View) SetLabels(labels []string) {
	v.SetStyle(v.style.WithLabels(labels))
}

func (v *View) changed() {
	if v.invalidate != nil {
		v.invalidate()
	}
}
