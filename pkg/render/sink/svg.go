package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/render"
	"github.com/matzehuels/deviationview/pkg/style"
	"github.com/matzehuels/deviationview/pkg/view"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily  string
	backdrop    style.Color
	hasBackdrop bool
}

// WithFontFamily sets the CSS font family of the labels.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithBackdrop fills the whole canvas with c before drawing.
func WithBackdrop(c style.Color) SVGOption {
	return func(r *svgRenderer) { r.backdrop, r.hasBackdrop = c, true }
}

// RenderSVG renders f as a standalone SVG document sized to the frame.
func RenderSVG(f view.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: "sans-serif"}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := f.Snapshot.Width, f.Snapshot.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	if r.hasBackdrop {
		fmt.Fprintf(&buf, `  <rect class="backdrop" x="0" y="0" width="%d" height="%d" fill="%s"%s/>`+"\n",
			w, h, r.backdrop.HexRGB(), opacityAttr("fill-opacity", r.backdrop))
	}

	render.Draw(&svgCanvas{buf: &buf, fontFamily: r.fontFamily}, f)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

type svgCanvas struct {
	buf        *bytes.Buffer
	fontFamily string
}

func (c *svgCanvas) DrawRect(r gauge.Rect, p render.Paint) {
	fmt.Fprintf(c.buf, `  <rect class="%s" x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`+"\n",
		p.Role, num(r.Left), num(r.Top), num(r.Width()), num(r.Height()),
		p.Color.HexRGB(), opacityAttr("fill-opacity", p.Color))
}

func (c *svgCanvas) DrawLine(l gauge.Line, p render.Paint) {
	fmt.Fprintf(c.buf, `  <line class="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
		p.Role, num(l.X1), num(l.Y1), num(l.X2), num(l.Y2),
		p.Color.HexRGB(), num(p.Stroke), opacityAttr("stroke-opacity", p.Color))
}

func (c *svgCanvas) DrawText(text string, at gauge.Point, p render.Paint) {
	fmt.Fprintf(c.buf, `  <text class="label" x="%s" y="%s" font-family="%s" font-size="%s" fill="%s"%s>%s</text>`+"\n",
		num(at.X), num(at.Y), escapeXML(c.fontFamily), num(p.FontSize),
		p.Color.HexRGB(), opacityAttr("fill-opacity", p.Color), escapeXML(text))
}

// num formats a coordinate with two decimals, trimming a ".00" suffix.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if len(s) > 3 && s[len(s)-3:] == ".00" {
		return s[:len(s)-3]
	}
	return s
}

func opacityAttr(name string, c style.Color) string {
	if c.A() == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, name, c.Opacity())
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
