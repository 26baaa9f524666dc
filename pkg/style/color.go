package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/deviationview/pkg/errors"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

// ARGB packs four channels into a Color. Each channel is masked to 8 bits.
func ARGB(a, r, g, b int) Color {
	return Color(uint32(a&0xff)<<24 | uint32(r&0xff)<<16 | uint32(g&0xff)<<8 | uint32(b&0xff))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Opacity returns alpha as a fraction in [0, 1].
func (c Color) Opacity() float64 { return float64(c.A()) / 255 }

// RGBA implements color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// Colorful returns the opaque RGB part of c.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R()) / 255, G: float64(c.G()) / 255, B: float64(c.B()) / 255}
}

// Over composites c onto an opaque backdrop and returns the opaque result.
func (c Color) Over(backdrop Color) Color {
	mixed := backdrop.Colorful().BlendRgb(c.Colorful(), c.Opacity()).Clamped()
	r, g, b := mixed.RGB255()
	return ARGB(0xff, int(r), int(g), int(b))
}

// HexRGB formats the RGB part as "#rrggbb".
func (c Color) HexRGB() string { return c.Colorful().Hex() }

// String formats c as "#AARRGGBB".
func (c Color) String() string { return fmt.Sprintf("#%08X", uint32(c)) }

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor accepts "#RGB", "#RRGGBB" and "#AARRGGBB". Colours without an
// alpha part are opaque.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint64(0xff)
	if len(raw) == 8 {
		a, err := strconv.ParseUint(raw[:2], 16, 8)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid alpha in %q", s)
		}
		alpha, raw = a, raw[2:]
	}
	if len(raw) != 3 && len(raw) != 6 {
		return 0, errors.New(errors.ErrCodeInvalidColor, "invalid color %q (want #RGB, #RRGGBB or #AARRGGBB)", s)
	}
	c, err := colorful.Hex("#" + strings.ToLower(raw))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return ARGB(int(alpha), int(r), int(g), int(b)), nil
}

// MustParseColor is like ParseColor but panics on error. Use it only for
// compile-time constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
