package sink

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/matzehuels/deviationview/pkg/errors"
	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/render"
	"github.com/matzehuels/deviationview/pkg/style"
	"github.com/matzehuels/deviationview/pkg/view"
)

// Cell is one character cell of terminal output.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// TermOption configures terminal rendering.
type TermOption func(*termRenderer)

type termRenderer struct {
	backdrop style.Color
}

// WithTermBackdrop sets the colour cells start with. Translucent paints
// are blended onto it. The default is opaque white.
func WithTermBackdrop(c style.Color) TermOption {
	return func(r *termRenderer) { r.backdrop = c }
}

// DrawScreen paints f onto screen, scaling the frame to the screen size.
// It does not call Show.
func DrawScreen(screen tcell.Screen, f view.Frame, opts ...TermOption) {
	r := termRenderer{backdrop: style.ARGB(0xff, 0xff, 0xff, 0xff)}
	for _, opt := range opts {
		opt(&r)
	}

	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 || f.Snapshot.Width <= 0 || f.Snapshot.Height <= 0 {
		return
	}
	c := newCellCanvas(screen, cols, rows, f, r.backdrop)
	c.clear()
	render.Draw(c, f)
}

// RenderCells draws f on an offscreen cols × rows screen and returns the
// cells row by row.
func RenderCells(f view.Frame, cols, rows int, opts ...TermOption) ([][]Cell, error) {
	if err := errors.ValidateDimensions(cols, rows); err != nil {
		return nil, err
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init simulation screen")
	}
	defer screen.Fini()
	screen.SetSize(cols, rows)

	DrawScreen(screen, f, opts...)

	out := make([][]Cell, rows)
	for y := range rows {
		out[y] = make([]Cell, cols)
		for x := range cols {
			mainc, _, st, _ := screen.GetContent(x, y)
			out[y][x] = Cell{Rune: mainc, Style: st}
		}
	}
	return out, nil
}

// RenderText is RenderCells without colours: one line per row with
// trailing spaces removed.
func RenderText(f view.Frame, cols, rows int) ([]byte, error) {
	cells, err := RenderCells(f, cols, rows)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, row := range cells {
		var line strings.Builder
		for _, c := range row {
			if c.Rune == 0 {
				line.WriteRune(' ')
				continue
			}
			line.WriteRune(c.Rune)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// cellCanvas maps pixel coordinates onto character cells. It keeps its own
// background grid so translucent paints blend with what is underneath.
type cellCanvas struct {
	screen     tcell.Screen
	cols, rows int
	sx, sy     float64
	bg         [][]style.Color
	primary    float64
}

func newCellCanvas(screen tcell.Screen, cols, rows int, f view.Frame, backdrop style.Color) *cellCanvas {
	bg := make([][]style.Color, rows)
	for y := range bg {
		bg[y] = make([]style.Color, cols)
		for x := range bg[y] {
			bg[y][x] = backdrop.Over(0xFFFFFFFF)
		}
	}
	return &cellCanvas{
		screen:  screen,
		cols:    cols,
		rows:    rows,
		sx:      float64(cols) / float64(f.Snapshot.Width),
		sy:      float64(rows) / float64(f.Snapshot.Height),
		bg:      bg,
		primary: f.Snapshot.PrimaryStroke,
	}
}

func (c *cellCanvas) clear() {
	for y := range c.rows {
		for x := range c.cols {
			c.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcellColor(c.bg[y][x])))
		}
	}
}

func (c *cellCanvas) inside(x, y int) bool { return x >= 0 && y >= 0 && x < c.cols && y < c.rows }

func (c *cellCanvas) cell(p gauge.Point) (int, int) {
	x := int(math.Floor(p.X * c.sx))
	y := int(math.Floor(p.Y * c.sy))
	return min(x, c.cols-1), min(y, c.rows-1)
}

func (c *cellCanvas) DrawRect(r gauge.Rect, p render.Paint) {
	x0, y0 := int(math.Floor(r.Left*c.sx)), int(math.Floor(r.Top*c.sy))
	x1, y1 := int(math.Ceil(r.Right*c.sx)), int(math.Ceil(r.Bottom*c.sy))
	for y := max(0, y0); y < min(y1, c.rows); y++ {
		for x := max(0, x0); x < min(x1, c.cols); x++ {
			c.bg[y][x] = p.Color.Over(c.bg[y][x])
			c.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(tcellColor(c.bg[y][x])))
		}
	}
}

func (c *cellCanvas) DrawLine(l gauge.Line, p render.Paint) {
	ch := lineRune(l, p.Stroke >= c.primary)
	x0, y0 := c.cell(l.Start())
	x1, y1 := c.cell(l.End())
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + (x1-x0)*i/steps
			y = y0 + (y1-y0)*i/steps
		}
		c.put(x, y, ch, p.Color)
	}
}

func (c *cellCanvas) DrawText(text string, at gauge.Point, p render.Paint) {
	x, y := c.cell(at)
	for _, r := range text {
		c.put(x, y, r, p.Color)
		x++
	}
}

func (c *cellCanvas) put(x, y int, r rune, fg style.Color) {
	if !c.inside(x, y) {
		return
	}
	bg := c.bg[y][x]
	st := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(fg.Over(bg)))
	c.screen.SetContent(x, y, r, nil, st)
}

func lineRune(l gauge.Line, heavy bool) rune {
	switch {
	case l.IsHorizontal() && heavy:
		return '━'
	case l.IsHorizontal():
		return '─'
	case l.IsVertical() && heavy:
		return '┃'
	case l.IsVertical():
		return '│'
	}
	return '·'
}

func tcellColor(c style.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
