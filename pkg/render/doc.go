// Package render draws a deviation scale frame onto an abstract canvas.
//
// # Overview
//
// [Draw] walks a [view.Frame] and issues primitive commands to a [Canvas]
// in a fixed order:
//
//  1. background rectangle
//  2. frontier rectangle
//  3. central line
//  4. labels (only the ones that exist, at most 11)
//  5. the 60 tick marks
//  6. the pointer, if visible
//  7. the 4 contour lines, if visible
//
// Draw does not compute geometry. Everything it needs is already in the
// frame, so one frame can be drawn many times on different canvases.
//
//	f, ok := v.Frame()
//	if !ok {
//	    return // no valid size yet
//	}
//	var rec render.Recorder
//	render.Draw(&rec, f)
//
// # Format Conversion
//
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool (from
// librsvg). PNG output is rasterised natively by the sink package.
//
//	svg := sink.RenderSVG(f)
//	pdf, err := render.ToPDF(svg)
//
// Concrete output formats live in [sink].
//
// [sink]: github.com/matzehuels/deviationview/pkg/render/sink
package render
