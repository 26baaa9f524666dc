package gauge

// Pointer position bounds.
const (
	PositionMin    = -50
	PositionMax    = 50
	PositionCenter = 0

	positionProportion = 50.0
)

// Clamp limits pos to [PositionMin, PositionMax].
func Clamp(pos int) int {
	return min(PositionMax, max(PositionMin, pos))
}

// PointerFraction returns where pos sits along the long axis, as a fraction
// of its length. Zero maps to exactly 11/22 without going through the
// linear formula.
func PointerFraction(pos int, o Orientation) float64 {
	pos = Clamp(pos)
	if pos == PositionCenter {
		return centralPart / longParts
	}
	a := o.axes()
	return centralPart/longParts + a.pointerSign*(availableParts/longParts*float64(pos)/positionProportion)
}

// PointerLine maps pos to the pointer segment for a width × height frame.
// The segment crosses the long axis over the same short-axis window as the
// ticks (parts 1 → 9 of 11).
func PointerLine(pos int, o Orientation, width, height int) Line {
	g := newGrid(o, width, height)
	return g.cross(PointerFraction(pos, o)*g.long(), shortStart, endPart)
}
