package style

import (
	"testing"

	"github.com/matzehuels/deviationview/pkg/errors"
)

func TestARGB(t *testing.T) {
	tests := []struct {
		a, r, g, b int
		want       Color
	}{
		{255, 0, 0, 0, 0xFF000000},
		{255, 255, 255, 255, 0xFFFFFFFF},
		{128, 0x81, 0xC7, 0x84, 0x8081C784},
		{0, 0, 0, 0, 0},
		{0x1ff, 0x100, -1, 0x12, 0xFF00FF12},
	}
	for _, tt := range tests {
		got := ARGB(tt.a, tt.r, tt.g, tt.b)
		if got != tt.want {
			t.Errorf("ARGB(%d,%d,%d,%d) = %v, want %v", tt.a, tt.r, tt.g, tt.b, got, tt.want)
		}
	}

	c := ARGB(1, 2, 3, 4)
	if c.A() != 1 || c.R() != 2 || c.G() != 3 || c.B() != 4 {
		t.Errorf("channels = %d %d %d %d, want 1 2 3 4", c.A(), c.R(), c.G(), c.B())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FFE0E0E0", 0xFFE0E0E0, false},
		{"#8081C784", 0x8081C784, false},
		{"#D32F2F", 0xFFD32F2F, false},
		{"d32f2f", 0xFFD32F2F, false},
		{"#fff", 0xFFFFFFFF, false},
		{" #000000 ", 0xFF000000, false},
		{"#00000000", 0, false},
		{"", 0, true},
		{"#12345", 0, true},
		{"#GG0000", 0, true},
		{"#ZZ000000", 0, true},
		{"red", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("error code = %v, want INVALID_COLOR", errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorFormatting(t *testing.T) {
	c := Color(0x8081C784)
	if got := c.String(); got != "#8081C784" {
		t.Errorf("String() = %q", got)
	}
	if got := c.HexRGB(); got != "#81c784" {
		t.Errorf("HexRGB() = %q", got)
	}
	text, _ := c.MarshalText()
	var back Color
	if err := back.UnmarshalText(text); err != nil || back != c {
		t.Errorf("text round trip = %v, %v", back, err)
	}
}

func TestColorOver(t *testing.T) {
	white := Color(0xFFFFFFFF)
	if got := Color(0xFF000000).Over(white); got != 0xFF000000 {
		t.Errorf("opaque over = %v, want black", got)
	}
	if got := Color(0x00000000).Over(white); got != white {
		t.Errorf("transparent over = %v, want white", got)
	}
	half := Color(0x80000000).Over(white)
	if half.R() < 0x7c || half.R() > 0x80 || half.A() != 0xff {
		t.Errorf("half black over white = %v", half)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0xFFFF0000).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}
}

func TestRoles(t *testing.T) {
	for _, r := range Roles {
		got, err := ParseRole(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRole(%q) = %v, %v", r.String(), got, err)
		}
	}
	if _, err := ParseRole("shadow"); err == nil {
		t.Error("ParseRole(shadow) should fail")
	}
	if Role(42).String() != "unknown" {
		t.Errorf("Role(42).String() = %q", Role(42).String())
	}
}

func TestPaletteWith(t *testing.T) {
	p := DefaultPalette()
	for i, r := range Roles {
		c := ARGB(255, i, i, i)
		q := p.With(r, c)
		if q.Get(r) != c {
			t.Errorf("%v: Get after With = %v, want %v", r, q.Get(r), c)
		}
		if p.Get(r) == c {
			t.Errorf("%v: With modified the receiver", r)
		}
	}
}

func TestDefaults(t *testing.T) {
	s := Default()
	if s.PointerVisible() || s.ContourVisible() {
		t.Error("pointer and contour should be hidden by default")
	}
	if s.Color(RolePointer) != s.Color(RoleContour) {
		t.Error("pointer colour should default to the contour colour")
	}
	if s.LabelCount() != 11 {
		t.Fatalf("LabelCount() = %d, want 11", s.LabelCount())
	}
	if l, _ := s.Label(0); l != "50" {
		t.Errorf("Label(0) = %q, want 50", l)
	}
	if l, _ := s.Label(10); l != "-50" {
		t.Errorf("Label(10) = %q, want -50", l)
	}
	if _, ok := s.Label(11); ok {
		t.Error("Label(11) should not exist")
	}
}

func TestStyleImmutable(t *testing.T) {
	base := Default()
	changed := base.
		WithPointerVisible(true).
		WithContourVisible(true).
		WithColor(RoleCentral, 0xFF00FF00).
		WithLabels([]string{"a", "b"})

	if !base.Equal(Default()) {
		t.Error("With* methods modified the receiver")
	}
	if !changed.PointerVisible() || !changed.ContourVisible() {
		t.Error("visibility not applied")
	}
	if changed.Color(RoleCentral) != 0xFF00FF00 {
		t.Errorf("central = %v", changed.Color(RoleCentral))
	}
	if changed.Equal(base) {
		t.Error("changed style should differ")
	}

	labels := []string{"x", "y"}
	s := base.WithLabels(labels)
	labels[0] = "mutated"
	if l, _ := s.Label(0); l != "x" {
		t.Errorf("WithLabels did not copy its input, Label(0) = %q", l)
	}
	out := s.Labels()
	out[1] = "mutated"
	if l, _ := s.Label(1); l != "y" {
		t.Errorf("Labels() did not return a copy, Label(1) = %q", l)
	}
}
