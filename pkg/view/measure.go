package view

import "fmt"

// MeasureMode says how a parent constrains one dimension.
type MeasureMode int

const (
	// Unspecified leaves the size up to the view.
	Unspecified MeasureMode = iota
	// Exactly forces the given size.
	Exactly
	// AtMost caps the size.
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Exactly:
		return "exactly"
	case AtMost:
		return "at_most"
	default:
		return "unspecified"
	}
}

// MeasureSpec is one dimension's constraint.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

func (s MeasureSpec) String() string { return fmt.Sprintf("%s(%d)", s.Mode, s.Size) }

// Padding is the space around the content, in pixels.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Measure resolves the view size for the given constraints. The desired
// size is the minimum size plus padding.
func (v *View) Measure(width, height MeasureSpec) (int, int) {
	desiredW := v.minWidth + v.padding.Left + v.padding.Right
	desiredH := v.minHeight + v.padding.Top + v.padding.Bottom
	return resolve(desiredW, width), resolve(desiredH, height)
}

func resolve(desired int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(desired, spec.Size)
	default:
		return desired
	}
}
