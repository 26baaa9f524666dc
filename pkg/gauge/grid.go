package gauge

// Grid constants shared by both orientations.
const (
	longParts      = 22.0
	shortParts     = 11.0
	centralPart    = longParts / 2   // 11: deviation zero
	availableParts = centralPart - 1 // 10: half-range excluding the 1-part margin
	backgroundEnd  = longParts - 1   // 21
	frontierStart  = availableParts - 1
	frontierEnd    = centralPart + 2
	shortStart     = 1.0
	endPart        = 9.0 // short-axis end of background, ticks and pointer

	majorNear1, majorNear2 = 1.0, 2.0
	majorFar1, majorFar2   = 8.0, 9.0
	minorNear1, minorNear2 = 1.0, 1.5
	minorFar1, minorFar2   = 8.5, 9.0
)

// grid projects part coordinates onto a pixel frame.
type grid struct {
	axes
	w, h float64
}

func newGrid(o Orientation, width, height int) grid {
	return grid{axes: o.axes(), w: float64(width), h: float64(height)}
}

// long returns the pixel length of the long axis.
func (g grid) long() float64 {
	if g.longIsX {
		return g.w
	}
	return g.h
}

// point maps a (long, short) part pair to pixels. The multiplication comes
// first so whole-part coordinates on divisible sizes are exact.
func (g grid) point(long, short float64) Point {
	if g.longIsX {
		return Point{X: long * g.w / g.longParts, Y: short * g.h / g.shortParts}
	}
	return Point{X: short * g.w / g.shortParts, Y: long * g.h / g.longParts}
}

// line joins two part coordinates.
func (g grid) line(long1, short1, long2, short2 float64) Line {
	a, b := g.point(long1, short1), g.point(long2, short2)
	return Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// cross returns the segment perpendicular to the long axis at pixel offset
// px, spanning short parts short1 → short2.
func (g grid) cross(px, short1, short2 float64) Line {
	if g.longIsX {
		return Line{X1: px, Y1: short1 * g.h / g.shortParts, X2: px, Y2: short2 * g.h / g.shortParts}
	}
	return Line{X1: short1 * g.w / g.shortParts, Y1: px, X2: short2 * g.w / g.shortParts, Y2: px}
}

// rect spans [long1, long2] × [short1, short2]. With long1 < long2 and
// short1 < short2 the first corner is the top-left one in both orientations.
func (g grid) rect(long1, long2, short1, short2 float64) Rect {
	a, b := g.point(long1, short1), g.point(long2, short2)
	return Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}
}

func majorOffset(i int) float64      { return 2 + 2*float64(i) }
func minorOffsetAbove(i int) float64 { return 2*float64(i) + 0.5 }
func minorOffsetBelow(i int) float64 { return 2*float64(i) - 0.5 }

type minorRun struct {
	offset func(int) float64
	side   [2]float64
}

func (g grid) minorRuns() [4]minorRun {
	near, far := [2]float64{minorNear1, minorNear2}, [2]float64{minorFar1, minorFar2}
	if g.minorBelowFirst {
		return [4]minorRun{{minorOffsetBelow, near}, {minorOffsetBelow, far}, {minorOffsetAbove, near}, {minorOffsetAbove, far}}
	}
	return [4]minorRun{{minorOffsetAbove, near}, {minorOffsetBelow, near}, {minorOffsetAbove, far}, {minorOffsetBelow, far}}
}

// MinorMarkSide reports whether minor tick j (0 to 4*MarksPerSet-1, counted
// from the first minor tick) sits on the far side, and its 1-based index
// among the ticks of that side.
func MinorMarkSide(o Orientation, j int) (far bool, index int) {
	run, k := j/MarksPerSet, j%MarksPerSet
	if o.axes().minorBelowFirst {
		return run%2 == 1, run/2*MarksPerSet + k + 1
	}
	return run >= 2, run%2*MarksPerSet + k + 1
}
