package carve

import (
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// RGB is an 8-bit-per-channel color sample.
type RGB struct {
	R, G, B uint8
}

// Color is a three-channel image stored as a flat row-major buffer.
type Color struct {
	width  int
	height int
	pix    []RGB
}

// NewColor creates a black color image.
// Zero width or height yields an empty image; negative values are rejected.
func NewColor(width, height int) (*Color, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Color{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}, nil
}

// NewColorFromPix creates a color image that takes ownership of pix.
// len(pix) must equal width*height.
func NewColorFromPix(width, height int, pix []RGB) (*Color, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d samples", ErrInvalidDimensions, width, height, len(pix))
	}
	return &Color{width: width, height: height, pix: pix}, nil
}

// Width returns the image width in pixels.
func (c *Color) Width() int { return c.width }

// Height returns the image height in pixels.
func (c *Color) Height() int { return c.height }

// Empty reports whether the image has zero area.
func (c *Color) Empty() bool { return len(c.pix) == 0 }

// Pix returns the underlying sample buffer in row-major order.
func (c *Color) Pix() []RGB { return c.pix }

// At returns the pixel at (x, y), clamping out-of-bounds coordinates to
// the nearest edge pixel.
func (c *Color) At(x, y int) RGB {
	return c.pix[clampIndex(x, y, c.width, c.height)]
}

// Set writes p at the in-bounds pixel (x, y).
func (c *Color) Set(x, y int, p RGB) {
	c.pix[y*c.width+x] = p
}

// Clone returns a deep copy of c.
func (c *Color) Clone() *Color {
	return &Color{width: c.width, height: c.height, pix: slices.Clone(c.pix)}
}

// Equal reports whether c and o have the same shape and pixels.
func (c *Color) Equal(o *Color) bool {
	return c.width == o.width && c.height == o.height && slices.Equal(c.pix, o.pix)
}

// String returns a short description for logs and test failures.
func (c *Color) String() string {
	return fmt.Sprintf("Color(%dx%d)", c.width, c.height)
}

// SplitChannels returns the red, green and blue planes of c as
// greyscale images.
func SplitChannels(c *Color) (r, g, b *Gray) {
	plane := func(pick func(RGB) uint8) *Gray {
		return &Gray{
			width:  c.width,
			height: c.height,
			pix: lo.Map(c.pix, func(p RGB, _ int) float64 {
				return float64(pick(p))
			}),
		}
	}
	r = plane(func(p RGB) uint8 { return p.R })
	g = plane(func(p RGB) uint8 { return p.G })
	b = plane(func(p RGB) uint8 { return p.B })
	return r, g, b
}

// MergeChannels recombines three equal-shaped planes into a color image.
// Samples are rounded and clipped to [0, 255] with the same rule as Finish,
// so finished planes pass through unchanged.
func MergeChannels(r, g, b *Gray) (*Color, error) {
	if !r.SameShape(g) || !r.SameShape(b) {
		return nil, fmt.Errorf("%w: merge %s, %s, %s", ErrShapeMismatch, r, g, b)
	}
	pix := make([]RGB, len(r.pix))
	for i := range pix {
		pix[i] = RGB{
			R: finishByte(r.pix[i]),
			G: finishByte(g.pix[i]),
			B: finishByte(b.pix[i]),
		}
	}
	return &Color{width: r.width, height: r.height, pix: pix}, nil
}

// Luma weights used for greyscale projection.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Luma returns 0.299·r + 0.587·g + 0.114·b rounded to the nearest
// integer, with halves going to the even neighbor (28.5 → 28, 21.5 → 22).
// This differs from Finish, which rounds halves away from zero.
func Luma(p RGB) float64 {
	// Explicit conversions prevent FMA fusion.
	v := float64(lumaR*float64(p.R)) + float64(lumaG*float64(p.G)) + float64(lumaB*float64(p.B))
	return math.RoundToEven(v)
}

// ToGray projects c onto luma. The result is finished.
func ToGray(c *Color) *Gray {
	return &Gray{
		width:  c.width,
		height: c.height,
		pix:    lo.Map(c.pix, func(p RGB, _ int) float64 { return Luma(p) }),
	}
}
