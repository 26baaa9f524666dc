package render

import (
	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/style"
	"github.com/matzehuels/deviationview/pkg/view"
)

// Paint describes how a primitive is drawn.
type Paint struct {
	Role  style.Role
	Color style.Color

	// Stroke is the line width. Rectangles are filled and carry the
	// secondary stroke width only for sinks that outline them.
	Stroke float64
	Fill   bool

	// FontSize is set for text paints only.
	FontSize float64
}

// Canvas receives draw commands. Coordinates are pixels with the origin at
// the top-left corner.
type Canvas interface {
	DrawRect(r gauge.Rect, p Paint)
	DrawLine(l gauge.Line, p Paint)
	DrawText(text string, at gauge.Point, p Paint)
}

// Paints is the paint set derived from a frame.
type Paints struct {
	Background Paint
	Frontier   Paint
	Central    Paint
	Font       Paint
	Mark       Paint
	Pointer    Paint
	Contour    Paint
}

// PaintsFor builds the paints for f.
func PaintsFor(f view.Frame) Paints {
	s, pal := f.Snapshot, f.Style.Palette()
	return Paints{
		Background: Paint{Role: style.RoleBackground, Color: pal.Background, Stroke: s.SecondaryStroke, Fill: true},
		Frontier:   Paint{Role: style.RoleFrontier, Color: pal.Frontier, Stroke: s.SecondaryStroke, Fill: true},
		Central:    Paint{Role: style.RoleCentral, Color: pal.Central, Stroke: s.PrimaryStroke},
		Font:       Paint{Role: style.RoleFont, Color: pal.Font, Fill: true, FontSize: s.FontSize},
		Mark:       Paint{Role: style.RoleContour, Color: pal.Contour, Stroke: s.SecondaryStroke},
		Pointer:    Paint{Role: style.RolePointer, Color: pal.Pointer, Stroke: s.PrimaryStroke},
		Contour:    Paint{Role: style.RoleContour, Color: pal.Contour, Stroke: s.SecondaryStroke},
	}
}

// Draw issues the commands for one frame.
func Draw(c Canvas, f view.Frame) {
	s := f.Snapshot
	p := PaintsFor(f)

	c.DrawRect(s.Background, p.Background)
	c.DrawRect(s.Frontier, p.Frontier)
	c.DrawLine(s.Central, p.Central)

	for i, label := range f.Labels {
		if i >= len(s.Labels) {
			break
		}
		c.DrawText(label, s.Labels[i], p.Font)
	}

	for _, m := range s.Marks {
		c.DrawLine(m, p.Mark)
	}

	if f.Style.PointerVisible() {
		c.DrawLine(f.Pointer, p.Pointer)
	}

	if f.Style.ContourVisible() {
		for _, l := range s.Contour {
			c.DrawLine(l, p.Contour)
		}
	}
}
