package gauge

import (
	"fmt"
	"image"
)

// Point is a position in pixel space. The origin is the top-left corner.
type Point struct {
	X, Y float64
}

// String formats the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Line is a segment from (X1, Y1) to (X2, Y2). The order of the end points
// is significant for contour lines, which run clockwise.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Start returns the first end point.
func (l Line) Start() Point { return Point{l.X1, l.Y1} }

// End returns the second end point.
func (l Line) End() Point { return Point{l.X2, l.Y2} }

// IsHorizontal reports whether both end points share a y coordinate.
func (l Line) IsHorizontal() bool { return l.Y1 == l.Y2 }

// IsVertical reports whether both end points share an x coordinate.
func (l Line) IsVertical() bool { return l.X1 == l.X2 }

// String formats the line as "(x1,y1)-(x2,y2)".
func (l Line) String() string { return l.Start().String() + "-" + l.End().String() }

// Rect is an axis-aligned rectangle in pixel space with Left <= Right and
// Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Image returns r truncated to integer pixels, the way raster canvases
// address rectangles.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

// String formats the rectangle as "(left,top)-(right,bottom)".
func (r Rect) String() string {
	return Point{r.Left, r.Top}.String() + "-" + Point{r.Right, r.Bottom}.String()
}
