package gauge

import (
	"strconv"
	"strings"

	"github.com/matzehuels/deviationview/pkg/errors"
)

// Orientation selects which screen axis carries the scale.
type Orientation int

const (
	// Vertical runs the scale top to bottom; positive deviation points up.
	Vertical Orientation = iota
	// Horizontal runs the scale left to right; positive deviation points right.
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "orientation(" + strconv.Itoa(int(o)) + ")"
	}
}

// Valid reports whether o is one of the defined orientations.
func (o Orientation) Valid() bool { return o == Vertical || o == Horizontal }

// ParseOrientation accepts "vertical"/"horizontal" in any case, and the
// integer enum values "0"/"1" used by markup resources.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v", "0":
		return Vertical, nil
	case "horizontal", "h", "1":
		return Horizontal, nil
	}
	return Vertical, errors.New(errors.ErrCodeInvalidOrientation, "invalid orientation: %q (must be 'vertical' or 'horizontal')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidOrientation, "invalid orientation: %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ReverseLabels reports whether labels are laid out in reverse order.
// Label sets are written top to bottom; a horizontal scale reads them
// right to left so that negative values end up on the left.
func (o Orientation) ReverseLabels() bool { return o.axes().reverseLabels }

// axes holds everything that differs between orientations. Both entries share
// the 22/11 grid; only the axis mapping and the size proportions change.
type axes struct {
	longIsX bool // long axis runs along x (Horizontal)

	longParts  float64
	shortParts float64

	// pointerSign is applied to the deflection: -1 moves toward part 0.
	pointerSign float64

	// Label anchors sit at long labelLong+2i on short part labelShort.
	labelLong  float64
	labelShort float64

	fontProportion          float64
	primaryLineProportion   float64
	secondaryLineProportion float64

	reverseLabels bool

	// minorBelowFirst emits the -0.5 minor runs on both sides first.
	minorBelowFirst bool
}

var orientationTable = [...]axes{
	Vertical: {
		longIsX:                 false,
		longParts:               longParts,
		shortParts:              shortParts,
		pointerSign:             -1,
		labelLong:               1,
		labelShort:              9.5,
		fontProportion:          42,
		primaryLineProportion:   107.5,
		secondaryLineProportion: 215,
		reverseLabels:           false,
		minorBelowFirst:         false,
	},
	Horizontal: {
		longIsX:                 true,
		longParts:               longParts,
		shortParts:              shortParts,
		pointerSign:             1,
		labelLong:               0.75,
		labelShort:              10,
		fontProportion:          21,
		primaryLineProportion:   53.75,
		secondaryLineProportion: 107.5,
		reverseLabels:           true,
		minorBelowFirst:         true,
	},
}

// axes returns the table entry for o. Unknown values fall back to Vertical.
func (o Orientation) axes() axes {
	if !o.Valid() {
		return orientationTable[Vertical]
	}
	return orientationTable[o]
}
