package glint

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is an 8-bit per channel RGBA color. Not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Named colors.
var (
	ColorRed       = Color{255, 0, 0, 255}
	ColorGreen     = Color{0, 255, 0, 255}
	ColorBlue      = Color{0, 0, 255, 255}
	ColorYellow    = Color{255, 255, 0, 255}
	ColorCyan      = Color{0, 255, 255, 255}
	ColorMagenta   = Color{255, 0, 255, 255}
	ColorBlack     = Color{0, 0, 0, 255}
	ColorWhite     = Color{255, 255, 255, 255}
	ColorLightGray = Color{192, 192, 192, 255}
	ColorGray      = Color{128, 128, 128, 255}
	ColorDarkGray  = Color{64, 64, 64, 255}
)

// RGBA returns the color as four components in [0, 1].
func (c Color) RGBA() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Pix returns the color as a single RGBA pixel.
func (c Color) Pix() []byte {
	return []byte{c.R, c.G, c.B, c.A}
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return "#" + hex.EncodeToString(c.Pix())
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses #rrggbb or #rrggbbaa. A missing alpha is opaque.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("glint: invalid color %q", text)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("glint: invalid color %q: %w", text, err)
	}
	c.R, c.G, c.B = b[0], b[1], b[2]
	c.A = 255
	if len(b) == 4 {
		c.A = b[3]
	}
	return nil
}

// UVRect is a rectangle in texture space. VMin is the V coordinate sampled at
// the bottom edge of a quad, which for atlas cells is numerically larger than
// VMax because image rows are stored top-to-bottom.
type UVRect struct {
	UMin, VMin, UMax, VMax float32
}

// FullUV covers an entire texture.
var FullUV = UVRect{0, 0, 1, 1}

// Flip mirrors a sprite's texture along one or both axes.
type Flip uint8

const (
	FlipNone Flip = iota // draw as authored
	FlipX                // mirror horizontally
	FlipY                // mirror vertically
	FlipXY               // mirror both axes
)

// Flags returns the flip as a pair of 0/1 values (x, y).
func (f Flip) Flags() (x, y float32) {
	switch f {
	case FlipX:
		return 1, 0
	case FlipY:
		return 0, 1
	case FlipXY:
		return 1, 1
	default:
		return 0, 0
	}
}

func (f Flip) String() string {
	switch f {
	case FlipNone:
		return "none"
	case FlipX:
		return "x"
	case FlipY:
		return "y"
	case FlipXY:
		return "xy"
	default:
		return fmt.Sprintf("Flip(%d)", uint8(f))
	}
}

// SpriteID identifies a sprite in the renderer's registry. IDs are issued in
// increasing order and never reused.
type SpriteID uint32

// ShaderID is the device handle of a linked shader program.
type ShaderID uint32

// SpriteSheetID is the device handle of a sprite sheet's texture.
type SpriteSheetID uint32

// Image is a tightly packed RGBA pixel buffer, rows top-to-bottom.
type Image struct {
	Width, Height int
	Pix           []byte
}

// TextureFilter selects texture sampling for sprite sheets.
type TextureFilter uint8

const (
	FilterNearest TextureFilter = iota // pixel-art sampling
	FilterLinear                       // bilinear sampling
)

func (f TextureFilter) String() string {
	if f == FilterLinear {
		return "linear"
	}
	return "nearest"
}

// MarshalText implements encoding.TextMarshaler.
func (f TextureFilter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText accepts "nearest" or "linear".
func (f *TextureFilter) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "nearest", "":
		*f = FilterNearest
	case "linear":
		*f = FilterLinear
	default:
		return fmt.Errorf("glint: unknown texture filter %q", text)
	}
	return nil
}
