package render

import (
	"fmt"

	"github.com/matzehuels/deviationview/pkg/gauge"
)

// Kind is the type of a recorded command.
type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Command is one recorded draw call. Only the field matching Kind is set.
type Command struct {
	Kind  Kind
	Rect  gauge.Rect
	Line  gauge.Line
	Text  string
	At    gauge.Point
	Paint Paint
}

func (c Command) String() string {
	switch c.Kind {
	case KindRect:
		return fmt.Sprintf("rect %v %s", c.Rect, c.Paint.Role)
	case KindLine:
		return fmt.Sprintf("line %v %s", c.Line, c.Paint.Role)
	default:
		return fmt.Sprintf("text %q at %v", c.Text, c.At)
	}
}

// Recorder is a Canvas that keeps every command in order.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) DrawRect(rect gauge.Rect, p Paint) {
	r.Commands = append(r.Commands, Command{Kind: KindRect, Rect: rect, Paint: p})
}

func (r *Recorder) DrawLine(l gauge.Line, p Paint) {
	r.Commands = append(r.Commands, Command{Kind: KindLine, Line: l, Paint: p})
}

func (r *Recorder) DrawText(text string, at gauge.Point, p Paint) {
	r.Commands = append(r.Commands, Command{Kind: KindText, Text: text, At: at, Paint: p})
}

// Count returns the number of commands of kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }
