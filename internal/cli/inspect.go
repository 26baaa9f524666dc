package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deviationview/pkg/errors"
	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/style"
	"github.com/matzehuels/deviationview/pkg/view"
)

// inspectCommand prints the computed geometry of a gauge.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		gf    gaugeFlags
		marks bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the computed gauge geometry",
		Long: `Print the geometry the renderers draw: the background and frontier bands,
the central line, the pointer, label anchors and stroke sizes. Coordinates are
pixels with the origin at the top-left corner.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			v, err := cfg.NewView(view.WithLogger(loggerFromContext(cmd.Context())))
			if err != nil {
				return err
			}
			f, ok := v.Frame()
			if !ok {
				return errors.New(errors.ErrCodeInternal, "view has no geometry")
			}
			printInspect(f, marks)
			return nil
		},
	}

	gf.register(cmd)
	cmd.Flags().BoolVar(&marks, "marks", false, "list every tick mark")

	return cmd
}

func printInspect(f view.Frame, marks bool) {
	s := f.Snapshot
	fmt.Println(StyleTitle.Render("Deviation scale"))
	printKeyValue("orientation", s.Orientation.String())
	printKeyValue("size", fmt.Sprintf("%dx%d", s.Width, s.Height))
	printKeyValue("position", fmt.Sprintf("%d (%.4f of the long axis)", f.Position, gauge.PointerFraction(f.Position, s.Orientation)))
	printKeyValue("font size", StyleNumber.Render(fmt.Sprintf("%.2f", s.FontSize)))
	printKeyValue("strokes", fmt.Sprintf("%.2f / %.2f", s.PrimaryStroke, s.SecondaryStroke))
	printKeyValue("fingerprint", s.Fingerprint()[:16])
	fmt.Println()
	fmt.Println(geometryTable(f, marks).Render())
}

func geometryTable(f view.Frame, marks bool) *table.Table {
	rows := geometryRows(f, marks)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Element", "Geometry", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 2 {
				return StyleDim
			}
			if row < len(rows) && rows[row][1] == "hidden" {
				return StyleDim
			}
			return lipgloss.NewStyle()
		})
}

// geometryRows lists the frame's primitives in drawing order. Tick marks
// are summarised unless marks is set.
func geometryRows(f view.Frame, marks bool) [][]string {
	s := f.Snapshot
	color := func(r style.Role) string { return f.Style.Color(r).String() }

	rows := [][]string{
		{"background", s.Background.String(), color(style.RoleBackground)},
		{"frontier", s.Frontier.String(), color(style.RoleFrontier)},
		{"central", s.Central.String(), color(style.RoleCentral)},
	}
	for i, text := range f.Labels {
		rows = append(rows, []string{"label " + strconv.Quote(text), s.Labels[i].String(), color(style.RoleFont)})
	}

	if marks {
		for i, m := range s.Marks {
			rows = append(rows, []string{markName(s.Orientation, i), m.String(), color(style.RoleContour)})
		}
	} else {
		rows = append(rows, []string{"marks", fmt.Sprintf("%d ticks (%d major)", gauge.MarkCount, 2*gauge.MarksPerSet), color(style.RoleContour)})
	}

	pointer := "hidden"
	if f.Style.PointerVisible() {
		pointer = f.Pointer.String()
	}
	rows = append(rows, []string{"pointer", pointer, color(style.RolePointer)})

	contour := "hidden"
	if f.Style.ContourVisible() {
		contour = fmt.Sprintf("%d segments", gauge.ContourCount)
	}
	rows = append(rows, []string{"contour", contour, color(style.RoleContour)})
	return rows
}

// markName names tick i in the order marks are laid out for o.
func markName(o gauge.Orientation, i int) string {
	const n = gauge.MarksPerSet
	switch {
	case i < n:
		return fmt.Sprintf("major near %d", i+1)
	case i < 2*n:
		return fmt.Sprintf("major far %d", i-n+1)
	}
	side := "near"
	far, index := gauge.MinorMarkSide(o, i-2*n)
	if far {
		side = "far"
	}
	return fmt.Sprintf("minor %s %d", side, index)
}
