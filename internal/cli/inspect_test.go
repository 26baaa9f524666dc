package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/deviationview/pkg/gauge"
)

func TestGeometryRows(t *testing.T) {
	f, _ := newTestView(t).Frame()

	rows := geometryRows(f, false)
	if got := len(rows); got != 3+gauge.LabelSlots+3 {
		t.Fatalf("len(rows) = %d, want %d", got, 3+gauge.LabelSlots+3)
	}
	if rows[0][0] != "background" || rows[0][1] != "(100,100)-(900,2100)" {
		t.Errorf("rows[0] = %v", rows[0])
	}
	if rows[3][0] != `label "50"` {
		t.Errorf("first label row = %v", rows[3])
	}
	pointer := rows[len(rows)-2]
	if pointer[0] != "pointer" || pointer[1] != f.Pointer.String() {
		t.Errorf("pointer row = %v, want %v", pointer, f.Pointer)
	}
	if contour := rows[len(rows)-1]; contour[1] != "hidden" {
		t.Errorf("contour row = %v, want hidden", contour)
	}
}

func TestGeometryRowsAllMarks(t *testing.T) {
	f, _ := newTestView(t).Frame()
	rows := geometryRows(f, true)
	if got, want := len(rows), 3+gauge.LabelSlots+gauge.MarkCount+2; got != want {
		t.Errorf("len(rows) = %d, want %d", got, want)
	}
}

func TestMarkName(t *testing.T) {
	tests := []struct {
		o    gauge.Orientation
		i    int
		want string
	}{
		{gauge.Vertical, 0, "major near 1"},
		{gauge.Vertical, 9, "major near 10"},
		{gauge.Vertical, 10, "major far 1"},
		{gauge.Vertical, 20, "minor near 1"},
		{gauge.Vertical, 39, "minor near 20"},
		{gauge.Vertical, 40, "minor far 1"},
		{gauge.Vertical, 59, "minor far 20"},
		{gauge.Horizontal, 20, "minor near 1"},
		{gauge.Horizontal, 30, "minor far 1"},
		{gauge.Horizontal, 40, "minor near 11"},
		{gauge.Horizontal, 59, "minor far 20"},
	}
	for _, tt := range tests {
		if got := markName(tt.o, tt.i); got != tt.want {
			t.Errorf("markName(%v, %d) = %q, want %q", tt.o, tt.i, got, tt.want)
		}
	}
}

func TestGeometryTable(t *testing.T) {
	f, _ := newTestView(t).Frame()
	out := geometryTable(f, false).Render()
	for _, want := range []string{"Element", "frontier", "(100,900)-(900,1300)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestInspectCommand(t *testing.T) {
	if _, err := execute(t, "inspect", "--orientation", "horizontal", "--marks"); err != nil {
		t.Errorf("inspect error = %v", err)
	}
}
