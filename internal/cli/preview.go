package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deviationview/pkg/cache"
	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/pipeline"
	"github.com/matzehuels/deviationview/pkg/render/sink"
	"github.com/matzehuels/deviationview/pkg/view"
)

// Terminal cells are about twice as tall as they are wide. The preview
// sizes the view in pixels of this cell size so the gauge keeps its shape.
const (
	cellWidth  = 10
	cellHeight = 20

	// previewChrome is the number of rows taken by the title and help lines.
	previewChrome = 2
	coarseStep    = 10
)

// previewCommand shows the gauge in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		gf         gaugeFlags
		printOnce  bool
		cols, rows int
		export     string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the gauge in the terminal",
		Long: `Show the gauge full-screen in the terminal and move the pointer with the keyboard.

Keys:
  ↑/→ k/l       move the pointer up one step
  ↓/← j/h       move the pointer down one step
  pgup/pgdown   move by ten
  0             back to zero
  p / c         toggle pointer / contour
  s             save the current frame as SVG (--export)
  q             quit

With --print the gauge is drawn once as plain text on stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			v, err := cfg.NewView()
			if err != nil {
				return err
			}

			if printOnce {
				if cols == 0 {
					cols = printCols(v.Orientation(), rows)
				}
				if err := v.Resize(cols*cellWidth, rows*cellHeight); err != nil {
					return err
				}
				f, _ := v.Frame()
				text, err := sink.RenderText(f, cols, rows)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(text)
				return err
			}

			m := newPreviewModel(cmd.Context(), v, export)
			defer m.cache.Close()
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	gf.register(cmd)
	cmd.Flags().BoolVar(&printOnce, "print", false, "print the gauge once instead of starting the interactive view")
	cmd.Flags().IntVar(&cols, "cols", 0, "columns for --print (default keeps the gauge proportions)")
	cmd.Flags().IntVar(&rows, "rows", 22, "rows for --print")
	cmd.Flags().StringVar(&export, "export", appName+".svg", "file the s key saves to")

	return cmd
}

// printCols picks a column count that keeps a vertical gauge at 1:2 and a
// horizontal one at 2:1 for the given number of rows.
func printCols(o gauge.Orientation, rows int) int {
	if o == gauge.Horizontal {
		return rows * 4
	}
	return rows
}

// =============================================================================
// previewModel - Interactive gauge view
// =============================================================================

type previewModel struct {
	ctx        context.Context
	view       *view.View
	cache      *cache.MemoryCache // exported SVGs by frame
	exportPath string
	cols, rows int
	status     string
	err        error
}

func newPreviewModel(ctx context.Context, v *view.View, exportPath string) previewModel {
	return previewModel{ctx: ctx, view: v, cache: cache.NewMemoryCache(0), exportPath: exportPath}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "right", "k", "l":
			m.nudge(1)
		case "down", "left", "j", "h":
			m.nudge(-1)
		case "pgup":
			m.nudge(coarseStep)
		case "pgdown":
			m.nudge(-coarseStep)
		case "0", "home":
			m.view.SetPosition(gauge.PositionCenter)
		case "p":
			m.view.SetPointerVisible(!m.view.Style().PointerVisible())
		case "c":
			m.view.SetContourVisible(!m.view.Style().ContourVisible())
		case "s":
			m.status = m.export()
		}

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(0, msg.Height-previewChrome)
		m.err = m.view.Resize(m.cols*cellWidth, m.rows*cellHeight)
	}
	return m, nil
}

func (m previewModel) nudge(delta int) {
	m.view.SetPosition(m.view.Position() + delta)
}

// export writes the current frame as SVG and returns a status line.
func (m previewModel) export() string {
	f, ok := m.view.Frame()
	if !ok {
		return "nothing to save yet"
	}
	opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}, Cache: m.cache}
	artifacts, err := pipeline.Render(m.ctx, f, opts)
	if err != nil {
		return err.Error()
	}
	path := outputPath(m.exportPath, pipeline.FormatSVG, false)
	if err := writeOutput(path, artifacts[pipeline.FormatSVG]); err != nil {
		return err.Error()
	}
	return "saved " + path
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Deviation"))
	b.WriteString(" ")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%+d", m.view.Position())))
	b.WriteString("\n")

	f, ok := m.view.Frame()
	switch {
	case m.err != nil:
		b.WriteString(StyleWarning.Render(m.err.Error()))
	case !ok || m.cols == 0 || m.rows == 0:
		b.WriteString(StyleDim.Render("waiting for terminal size"))
	default:
		cells, err := sink.RenderCells(f, m.cols, m.rows)
		if err != nil {
			b.WriteString(StyleWarning.Render(err.Error()))
			break
		}
		b.WriteString(styledCells(cells))
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ move  pgup/pgdown ±10  0 reset  p pointer  c contour  s save  q quit"))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(StyleValue.Render(m.status))
	}
	return b.String()
}

// styledCells renders cell rows with lipgloss, one style run at a time.
func styledCells(rows [][]sink.Cell) string {
	var b strings.Builder
	for y, row := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < len(row); {
			st := row[x].Style
			var run strings.Builder
			for ; x < len(row) && row[x].Style == st; x++ {
				r := row[x].Rune
				if r == 0 {
					r = ' '
				}
				run.WriteRune(r)
			}
			b.WriteString(cellStyle(st).Render(run.String()))
		}
	}
	return b.String()
}

func cellStyle(st tcell.Style) lipgloss.Style {
	fg, bg, _ := st.Decompose()
	s := lipgloss.NewStyle()
	if hex := fg.Hex(); hex >= 0 {
		s = s.Foreground(lipgloss.Color(fmt.Sprintf("#%06x", hex)))
	}
	if hex := bg.Hex(); hex >= 0 {
		s = s.Background(lipgloss.Color(fmt.Sprintf("#%06x", hex)))
	}
	return s
}
