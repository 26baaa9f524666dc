package sink

import (
	"encoding/json"

	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/style"
	"github.com/matzehuels/deviationview/pkg/view"
)

type jsonOutput struct {
	Fingerprint string         `json:"fingerprint"`
	Position    int            `json:"position"`
	Pointer     *gauge.Line    `json:"pointer,omitempty"`
	Geometry    gauge.Snapshot `json:"geometry"`
	Labels      []jsonLabel    `json:"labels"`
	Style       jsonStyle      `json:"style"`
}

type jsonLabel struct {
	Text string      `json:"text"`
	At   gauge.Point `json:"at"`
}

type jsonStyle struct {
	Colors         map[string]style.Color `json:"colors"`
	PointerVisible bool                   `json:"pointer_visible"`
	ContourVisible bool                   `json:"contour_visible"`
}

// RenderJSON exports the frame geometry, labels and style. The pointer is
// included only when visible. The fingerprint identifies the
// size-dependent geometry.
func RenderJSON(f view.Frame) ([]byte, error) {
	out := jsonOutput{
		Fingerprint: f.Snapshot.Fingerprint(),
		Position:    f.Position,
		Geometry:    f.Snapshot,
		Labels:      make([]jsonLabel, 0, len(f.Labels)),
		Style: jsonStyle{
			Colors:         make(map[string]style.Color, len(style.Roles)),
			PointerVisible: f.Style.PointerVisible(),
			ContourVisible: f.Style.ContourVisible(),
		},
	}
	if f.Style.PointerVisible() {
		p := f.Pointer
		out.Pointer = &p
	}
	for i, l := range f.Labels {
		out.Labels = append(out.Labels, jsonLabel{Text: l, At: f.Snapshot.Labels[i]})
	}
	for _, r := range style.Roles {
		out.Style.Colors[r.String()] = f.Style.Color(r)
	}
	return json.MarshalIndent(out, "", "  ")
}
