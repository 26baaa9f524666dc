// Package sink turns a [view.Frame] into concrete output formats.
//
// # Overview
//
// Each sink is a [render.Canvas] fed by [render.Draw], so every format
// draws the same commands in the same order:
//
//   - SVG: vector output, written directly
//   - PNG: raster output via fogleman/gg with the Go Regular font
//   - PDF: SVG converted with rsvg-convert (see [render.ToPDF])
//   - JSON: geometry export with a fingerprint for change detection
//   - Terminal: character cells on a tcell screen
//
// Basic usage:
//
//	f, ok := v.Frame()
//	if !ok {
//	    return nil // nothing to draw yet
//	}
//	svg := sink.RenderSVG(f, sink.WithFontFamily("monospace"))
//	png, err := sink.RenderPNG(f, sink.WithScale(2))
//	txt, err := sink.RenderText(f, 40, 20)
//
// All sinks are deterministic: the same frame gives the same bytes.
//
// # Terminal Output
//
// [DrawScreen] paints a frame onto any tcell screen, scaled to the screen
// size. [RenderCells] and [RenderText] do the same on an offscreen
// simulation screen and read the cells back.
//
// [render.ToPDF]: github.com/matzehuels/deviationview/pkg/render.ToPDF
package sink
