// Package style holds the visual configuration of a deviation scale.
//
// A [Style] is a value: every With* method returns a new Style and leaves
// the receiver untouched, so a renderer holding one never observes a
// half-applied change.
//
//	s := style.Default().
//	    WithPointerVisible(true).
//	    WithColor(style.RoleCentral, style.ARGB(255, 0, 128, 0))
package style

import "slices"

// DefaultLabels is the label set used when none is configured, listed from
// the top of a vertical scale.
var DefaultLabels = []string{"50", "40", "30", "20", "10", "0", "-10", "-20", "-30", "-40", "-50"}

// Style is an immutable set of colours, visibility flags and labels.
type Style struct {
	palette        Palette
	pointerVisible bool
	contourVisible bool
	labels         []string
}

// Default returns the default palette and labels with the pointer and
// contour hidden.
func Default() Style {
	return Style{palette: DefaultPalette(), labels: slices.Clone(DefaultLabels)}
}

// Palette returns the colours.
func (s Style) Palette() Palette { return s.palette }

// Color returns the colour for role r.
func (s Style) Color(r Role) Color { return s.palette.Get(r) }

// PointerVisible reports whether the pointer is drawn.
func (s Style) PointerVisible() bool { return s.pointerVisible }

// ContourVisible reports whether the outline is drawn.
func (s Style) ContourVisible() bool { return s.contourVisible }

// Labels returns a copy of the label set.
func (s Style) Labels() []string { return slices.Clone(s.labels) }

// Label returns label i and whether it exists.
func (s Style) Label(i int) (string, bool) {
	if i < 0 || i >= len(s.labels) {
		return "", false
	}
	return s.labels[i], true
}

// LabelCount returns the number of labels.
func (s Style) LabelCount() int { return len(s.labels) }

// WithPalette returns a copy with every colour replaced.
func (s Style) WithPalette(p Palette) Style {
	s.palette = p
	return s
}

// WithColor returns a copy with role r set to c.
func (s Style) WithColor(r Role, c Color) Style {
	s.palette = s.palette.With(r, c)
	return s
}

// WithPointerVisible returns a copy with pointer visibility set.
func (s Style) WithPointerVisible(v bool) Style {
	s.pointerVisible = v
	return s
}

// WithContourVisible returns a copy with contour visibility set.
func (s Style) WithContourVisible(v bool) Style {
	s.contourVisible = v
	return s
}

// WithLabels returns a copy using labels. The slice is copied.
func (s Style) WithLabels(labels []string) Style {
	s.labels = slices.Clone(labels)
	return s
}

// Equal reports whether two styles produce the same drawing.
func (s Style) Equal(o Style) bool {
	return s.palette == o.palette &&
		s.pointerVisible == o.pointerVisible &&
		s.contourVisible == o.contourVisible &&
		slices.Equal(s.labels, o.labels)
}
