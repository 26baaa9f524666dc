package gauge

import (
	"math"
	"testing"

	"github.com/matzehuels/deviationview/pkg/errors"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b)) }

func mustCompute(t *testing.T, w, h int, o Orientation) Snapshot {
	t.Helper()
	s, err := Compute(w, h, o)
	if err != nil {
		t.Fatalf("Compute(%d, %d, %v) error = %v", w, h, o, err)
	}
	return s
}

func TestComputeVerticalScenario(t *testing.T) {
	s := mustCompute(t, 1100, 2200, Vertical)

	if want := (Rect{100, 100, 900, 2100}); s.Background != want {
		t.Errorf("Background = %v, want %v", s.Background, want)
	}
	if want := (Rect{100, 900, 900, 1300}); s.Frontier != want {
		t.Errorf("Frontier = %v, want %v", s.Frontier, want)
	}
	if want := (Line{100, 1100, 900, 1100}); s.Central != want {
		t.Errorf("Central = %v, want %v", s.Central, want)
	}
	if want := (Point{950, 100}); s.Labels[0] != want {
		t.Errorf("Labels[0] = %v, want %v", s.Labels[0], want)
	}
	if want := (Point{950, 2100}); s.Labels[LabelSlots-1] != want {
		t.Errorf("Labels[10] = %v, want %v", s.Labels[LabelSlots-1], want)
	}
	if !approx(s.FontSize, 2200/42.0) {
		t.Errorf("FontSize = %v, want %v", s.FontSize, 2200/42.0)
	}
	if !approx(s.PrimaryStroke, 2200/107.5) {
		t.Errorf("PrimaryStroke = %v, want %v", s.PrimaryStroke, 2200/107.5)
	}
	if !approx(s.SecondaryStroke, 2200/215.0) {
		t.Errorf("SecondaryStroke = %v, want %v", s.SecondaryStroke, 2200/215.0)
	}
}

func TestComputeHorizontalScenario(t *testing.T) {
	s := mustCompute(t, 2200, 1100, Horizontal)

	if want := (Rect{100, 100, 2100, 900}); s.Background != want {
		t.Errorf("Background = %v, want %v", s.Background, want)
	}
	if want := (Rect{900, 100, 1300, 900}); s.Frontier != want {
		t.Errorf("Frontier = %v, want %v", s.Frontier, want)
	}
	if want := (Line{1100, 100, 1100, 900}); s.Central != want {
		t.Errorf("Central = %v, want %v", s.Central, want)
	}
	if want := (Point{75, 1000}); s.Labels[0] != want {
		t.Errorf("Labels[0] = %v, want %v", s.Labels[0], want)
	}
	if want := (Point{2075, 1000}); s.Labels[LabelSlots-1] != want {
		t.Errorf("Labels[10] = %v, want %v", s.Labels[LabelSlots-1], want)
	}
	if !approx(s.FontSize, 1100/21.0) {
		t.Errorf("FontSize = %v, want %v", s.FontSize, 1100/21.0)
	}
}

func TestComputeMarks(t *testing.T) {
	s := mustCompute(t, 1100, 2200, Vertical)

	tests := []struct {
		name  string
		index int
		want  Line
	}{
		{"first near major", 0, Line{100, 200, 200, 200}},
		{"last near major", 9, Line{100, 2000, 200, 2000}},
		{"first far major", 10, Line{800, 200, 900, 200}},
		{"first near minor above", 20, Line{100, 250, 150, 250}},
		{"first near minor below", 30, Line{100, 150, 150, 150}},
		{"first far minor above", 40, Line{850, 250, 900, 250}},
		{"last far minor below", 59, Line{850, 1950, 900, 1950}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Marks[tt.index]; got != tt.want {
				t.Errorf("Marks[%d] = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestComputeMarksHorizontal(t *testing.T) {
	s := mustCompute(t, 2200, 1100, Horizontal)

	if want := (Line{200, 100, 200, 200}); s.Marks[0] != want {
		t.Errorf("Marks[0] = %v, want %v", s.Marks[0], want)
	}
	if want := (Line{200, 800, 200, 900}); s.Marks[10] != want {
		t.Errorf("Marks[10] = %v, want %v", s.Marks[10], want)
	}

	tests := []struct {
		name  string
		index int
		want  Line
	}{
		{"first near minor below", 20, Line{150, 100, 150, 150}},
		{"first far minor below", 30, Line{150, 850, 150, 900}},
		{"first near minor above", 40, Line{250, 100, 250, 150}},
		{"last far minor above", 59, Line{2050, 850, 2050, 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Marks[tt.index]; got != tt.want {
				t.Errorf("Marks[%d] = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestMinorMarkSide(t *testing.T) {
	tests := []struct {
		o     Orientation
		j     int
		far   bool
		index int
	}{
		{Vertical, 0, false, 1},
		{Vertical, 19, false, 20},
		{Vertical, 20, true, 1},
		{Vertical, 39, true, 20},
		{Horizontal, 0, false, 1},
		{Horizontal, 10, true, 1},
		{Horizontal, 20, false, 11},
		{Horizontal, 39, true, 20},
	}
	for _, tt := range tests {
		far, index := MinorMarkSide(tt.o, tt.j)
		if far != tt.far || index != tt.index {
			t.Errorf("MinorMarkSide(%v, %d) = %v, %d, want %v, %d", tt.o, tt.j, far, index, tt.far, tt.index)
		}
	}
}

func TestComputeCounts(t *testing.T) {
	sizes := [][2]int{{1, 1}, {7, 13}, {320, 480}, {1100, 2200}, {4001, 997}}
	for _, o := range []Orientation{Vertical, Horizontal} {
		for _, sz := range sizes {
			s := mustCompute(t, sz[0], sz[1], o)
			if len(s.Marks) != 60 {
				t.Errorf("%v %v: len(Marks) = %d, want 60", o, sz, len(s.Marks))
			}
			if len(s.Contour) != 4 {
				t.Errorf("%v %v: len(Contour) = %d, want 4", o, sz, len(s.Contour))
			}
			var zero Line
			for i, m := range s.Marks {
				if m == zero {
					t.Errorf("%v %v: Marks[%d] not set", o, sz, i)
				}
			}
		}
	}
}

func TestComputeMarksPerpendicular(t *testing.T) {
	for _, o := range []Orientation{Vertical, Horizontal} {
		s := mustCompute(t, 640, 960, o)
		for i, m := range s.Marks {
			ok := m.IsHorizontal()
			if o == Horizontal {
				ok = m.IsVertical()
			}
			if !ok {
				t.Errorf("%v: Marks[%d] = %v is not perpendicular to the long axis", o, i, m)
			}
			if !s.Background.Contains(m.Start()) || !s.Background.Contains(m.End()) {
				t.Errorf("%v: Marks[%d] = %v outside background %v", o, i, m, s.Background)
			}
		}
	}
}

func TestComputeContour(t *testing.T) {
	for _, o := range []Orientation{Vertical, Horizontal} {
		s := mustCompute(t, 1100, 2200, o)
		b := s.Background
		want := [4]Line{
			{b.Left, b.Top, b.Right, b.Top},
			{b.Right, b.Top, b.Right, b.Bottom},
			{b.Right, b.Bottom, b.Left, b.Bottom},
			{b.Left, b.Bottom, b.Left, b.Top},
		}
		if s.Contour != want {
			t.Errorf("%v: Contour = %v, want %v", o, s.Contour, want)
		}
		for i := range s.Contour {
			next := s.Contour[(i+1)%len(s.Contour)]
			if s.Contour[i].End() != next.Start() {
				t.Errorf("%v: contour segment %d does not join segment %d", o, i, (i+1)%4)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	for _, o := range []Orientation{Vertical, Horizontal} {
		for _, sz := range [][2]int{{1100, 2200}, {333, 777}, {1, 2}} {
			a := mustCompute(t, sz[0], sz[1], o)
			b := mustCompute(t, sz[0], sz[1], o)
			if a != b {
				t.Errorf("%v %v: Compute not deterministic", o, sz)
			}
			if a.Fingerprint() != b.Fingerprint() {
				t.Errorf("%v %v: Fingerprint not deterministic", o, sz)
			}
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := mustCompute(t, 1100, 2200, Vertical)
	b := mustCompute(t, 1100, 2201, Vertical)
	c := mustCompute(t, 1100, 2200, Horizontal)

	if len(a.Fingerprint()) != 64 {
		t.Errorf("Fingerprint length = %d, want 64", len(a.Fingerprint()))
	}
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("different sizes should have different fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different orientations should have different fingerprints")
	}
}

func TestComputeStrokeRatio(t *testing.T) {
	for _, h := range []int{1, 215, 1000, 2200, 12345} {
		v := mustCompute(t, 500, h, Vertical)
		hz := mustCompute(t, 500, h, Horizontal)
		if !approx(hz.PrimaryStroke, 2*v.PrimaryStroke) {
			t.Errorf("h=%d: horizontal primary %v, want 2 × %v", h, hz.PrimaryStroke, v.PrimaryStroke)
		}
		if !approx(hz.SecondaryStroke, 2*v.SecondaryStroke) {
			t.Errorf("h=%d: horizontal secondary %v, want 2 × %v", h, hz.SecondaryStroke, v.SecondaryStroke)
		}
		if !approx(hz.FontSize, 2*v.FontSize) {
			t.Errorf("h=%d: horizontal font %v, want 2 × %v", h, hz.FontSize, v.FontSize)
		}
	}
}

func TestComputeInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		o    Orientation
		code errors.Code
	}{
		{"zero width", 0, 100, Vertical, errors.ErrCodeInvalidDimensions},
		{"zero height", 100, 0, Horizontal, errors.ErrCodeInvalidDimensions},
		{"negative", -10, -10, Vertical, errors.ErrCodeInvalidDimensions},
		{"bad orientation", 100, 100, Orientation(7), errors.ErrCodeInvalidOrientation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compute(tt.w, tt.h, tt.o)
			if err == nil {
				t.Fatal("Compute() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
			if s != (Snapshot{}) {
				t.Error("Compute() returned partial geometry on error")
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{Left: 100, Top: 100, Right: 900, Bottom: 2100}
	if r.Width() != 800 || r.Height() != 2000 {
		t.Errorf("size = %vx%v, want 800x2000", r.Width(), r.Height())
	}
	if r.CenterX() != 500 || r.CenterY() != 1100 {
		t.Errorf("center = (%v,%v), want (500,1100)", r.CenterX(), r.CenterY())
	}
	if got := (Rect{1.9, 2.5, 10.99, 20.1}).Image(); got.Min.X != 1 || got.Min.Y != 2 || got.Max.X != 10 || got.Max.Y != 20 {
		t.Errorf("Image() = %v, want (1,2)-(10,20)", got)
	}
	if got := r.String(); got != "(100,100)-(900,2100)" {
		t.Errorf("String() = %q", got)
	}
}
