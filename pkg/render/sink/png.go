package sink

import (
	"bytes"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/deviationview/pkg/errors"
	"github.com/matzehuels/deviationview/pkg/gauge"
	"github.com/matzehuels/deviationview/pkg/render"
	"github.com/matzehuels/deviationview/pkg/style"
	"github.com/matzehuels/deviationview/pkg/view"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale       float64
	backdrop    style.Color
	hasBackdrop bool
}

// WithScale sets the PNG scale factor (default 1).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackdrop fills the image with c before drawing. Without it the
// area outside the scale is transparent.
func WithPNGBackdrop(c style.Color) PNGOption {
	return func(r *pngRenderer) { r.backdrop, r.hasBackdrop = c, true }
}

var regularFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// RenderPNG rasterises f. The image is the frame size times the scale.
func RenderPNG(f view.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", r.scale)
	}

	ttf, err := regularFont()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse font")
	}

	w := int(float64(f.Snapshot.Width)*r.scale + 0.5)
	h := int(float64(f.Snapshot.Height)*r.scale + 0.5)
	if err := errors.ValidateDimensions(w, h); err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	if r.hasBackdrop {
		dc.SetColor(r.backdrop)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)

	// Glyphs go through the context matrix, so the face stays unscaled.
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    f.Snapshot.FontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	defer face.Close()
	dc.SetFontFace(face)

	render.Draw(&pngCanvas{dc: dc}, f)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

type pngCanvas struct {
	dc *gg.Context
}

func (c *pngCanvas) DrawRect(r gauge.Rect, p render.Paint) {
	c.dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	c.dc.SetColor(p.Color)
	c.dc.Fill()
}

func (c *pngCanvas) DrawLine(l gauge.Line, p render.Paint) {
	c.dc.SetColor(p.Color)
	c.dc.SetLineWidth(p.Stroke)
	c.dc.SetLineCapButt()
	c.dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	c.dc.Stroke()
}

func (c *pngCanvas) DrawText(text string, at gauge.Point, p render.Paint) {
	c.dc.SetColor(p.Color)
	c.dc.DrawString(text, at.X, at.Y)
}
