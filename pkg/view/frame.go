package view

import (
	"slices"

	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/style"
)

// Frame is everything a renderer needs for one draw. It is a copy; later
// changes to the View do not affect it.
type Frame struct {
	Snapshot gauge.Snapshot
	Pointer  gauge.Line
	Position int
	Style    style.Style

	// Labels are in slot order: Labels[i] is drawn at Snapshot.Labels[i].
	// There are at most gauge.LabelSlots of them.
	Labels []string
}

// Frame returns the current frame, or false if the view has no valid size.
func (v *View) Frame() (Frame, bool) {
	if !v.sized {
		return Frame{}, false
	}
	return Frame{
		Snapshot: v.snap,
		Pointer:  v.pointer,
		Position: v.position,
		Style:    v.style,
		Labels:   slotLabels(v.style.Labels(), v.orientation),
	}, true
}

// slotLabels orders labels by anchor slot and drops any beyond the last
// slot.
func slotLabels(labels []string, o gauge.Orientation) []string {
	if len(labels) > gauge.LabelSlots {
		labels = labels[:gauge.LabelSlots]
	}
	if o.ReverseLabels() {
		labels = slices.Clone(labels)
		slices.Reverse(labels)
	}
	return labels
}
