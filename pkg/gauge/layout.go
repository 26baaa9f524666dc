package gauge

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/matzehuels/deviationview/pkg/errors"
)

const (
	// MarksPerSet is the number of ticks in each major or minor run.
	MarksPerSet = 10
	// MarkCount is the total number of tick lines: 10 majors and 20 minors
	// on each of the two sides.
	MarkCount = 2*MarksPerSet + 4*MarksPerSet
	// ContourCount is the number of outline segments.
	ContourCount = 4
	// LabelSlots is the number of label anchors, one per major position.
	LabelSlots = 11
)

// Snapshot is the size-dependent geometry of one frame. All fields are
// plain values, so two snapshots can be compared with ==.
type Snapshot struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Orientation Orientation `json:"orientation"`

	Background Rect `json:"background"`
	Frontier   Rect `json:"frontier"`
	Central    Line `json:"central"`

	Marks   [MarkCount]Line    `json:"marks"`
	Contour [ContourCount]Line `json:"contour"`

	Labels   [LabelSlots]Point `json:"labels"`
	FontSize float64           `json:"font_size"`

	PrimaryStroke   float64 `json:"primary_stroke"`
	SecondaryStroke float64 `json:"secondary_stroke"`
}

// Compute recomputes every size-dependent primitive for a width × height
// frame. It returns an INVALID_DIMENSIONS error for non-positive sizes and
// an INVALID_ORIENTATION error for unknown orientations; no partial
// snapshot is produced in either case.
func Compute(width, height int, o Orientation) (Snapshot, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return Snapshot{}, err
	}
	if !o.Valid() {
		return Snapshot{}, errors.New(errors.ErrCodeInvalidOrientation, "invalid orientation: %d", int(o))
	}

	g := newGrid(o, width, height)
	s := Snapshot{
		Width:       width,
		Height:      height,
		Orientation: o,
		Background:  g.rect(shortStart, backgroundEnd, shortStart, endPart),
		Frontier:    g.rect(frontierStart, frontierEnd, shortStart, endPart),
		Central:     g.line(centralPart, shortStart, centralPart, endPart),
	}
	s.Marks = g.marks()
	s.Contour = g.contour()
	for i := range s.Labels {
		s.Labels[i] = g.point(g.labelLong+2*float64(i), g.labelShort)
	}

	s.FontSize = g.h / g.fontProportion
	s.PrimaryStroke = g.h / g.primaryLineProportion
	s.SecondaryStroke = g.h / g.secondaryLineProportion
	return s, nil
}

// marks lays out near majors, far majors, then four minor runs. Vertical
// emits the +0.5 then -0.5 offsets on the near side before the far side;
// Horizontal emits both -0.5 runs (near, far) before both +0.5 runs.
func (g grid) marks() [MarkCount]Line {
	var out [MarkCount]Line
	n := 0
	add := func(long, short1, short2 float64) {
		out[n] = g.line(long, short1, long, short2)
		n++
	}

	for _, side := range [][2]float64{{majorNear1, majorNear2}, {majorFar1, majorFar2}} {
		for i := 0; i < MarksPerSet; i++ {
			add(majorOffset(i), side[0], side[1])
		}
	}
	for _, run := range g.minorRuns() {
		for i := 1; i <= MarksPerSet; i++ {
			add(run.offset(i), run.side[0], run.side[1])
		}
	}
	return out
}

// contour walks the background outline clockwise from the top-left corner.
func (g grid) contour() [ContourCount]Line {
	tl := g.point(shortStart, shortStart)
	br := g.point(backgroundEnd, endPart)
	tr := Point{X: br.X, Y: tl.Y}
	bl := Point{X: tl.X, Y: br.Y}

	seg := func(a, b Point) Line { return Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y} }
	return [ContourCount]Line{seg(tl, tr), seg(tr, br), seg(br, bl), seg(bl, tl)}
}

// Fingerprint returns the SHA-256 of the snapshot's JSON encoding as 64 hex
// characters. Identical inputs to Compute give identical fingerprints.
func (s Snapshot) Fingerprint() string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
