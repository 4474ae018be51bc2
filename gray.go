package carve

import (
	"fmt"
	"slices"
)

// Gray is a single-channel image stored as a flat row-major buffer.
//
// Samples are float64 so that intermediate correlation results can hold
// unranged real values. A finished image (see Finish) holds integers in
// [0, 255].
type Gray struct {
	width  int
	height int
	pix    []float64
}

// NewGray creates a zero-filled greyscale image.
// Zero width or height yields an empty image; negative values are rejected.
func NewGray(width, height int) (*Gray, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Gray{
		width:  width,
		height: height,
		pix:    make([]float64, width*height),
	}, nil
}

// NewGrayFromPix creates a greyscale image that takes ownership of pix.
// len(pix) must equal width*height.
func NewGrayFromPix(width, height int, pix []float64) (*Gray, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("%w: %dx%d with %d samples", ErrInvalidDimensions, width, height, len(pix))
	}
	return &Gray{width: width, height: height, pix: pix}, nil
}

// newGrayLike allocates an image with the same shape as g.
func newGrayLike(g *Gray) *Gray {
	return &Gray{
		width:  g.width,
		height: g.height,
		pix:    make([]float64, len(g.pix)),
	}
}

// Width returns the image width in pixels.
func (g *Gray) Width() int { return g.width }

// Height returns the image height in pixels.
func (g *Gray) Height() int { return g.height }

// Empty reports whether the image has zero area.
func (g *Gray) Empty() bool { return len(g.pix) == 0 }

// Pix returns the underlying sample buffer in row-major order.
// Modifying it modifies the image.
func (g *Gray) Pix() []float64 { return g.pix }

// Index returns the flat index of the in-bounds pixel (x, y).
func (g *Gray) Index(x, y int) int { return y*g.width + x }

// At returns the sample at (x, y). Out-of-bounds coordinates are clamped
// to the nearest edge pixel. At panics on an empty image.
func (g *Gray) At(x, y int) float64 {
	return g.pix[clampIndex(x, y, g.width, g.height)]
}

// Clamp returns (x, y) clamped into the image, the coordinates At reads.
func (g *Gray) Clamp(x, y int) (int, int) {
	return clampCoord(x, g.width), clampCoord(y, g.height)
}

// Set writes v at the in-bounds pixel (x, y).
func (g *Gray) Set(x, y int, v float64) {
	g.pix[y*g.width+x] = v
}

// Clone returns a deep copy of g.
func (g *Gray) Clone() *Gray {
	return &Gray{width: g.width, height: g.height, pix: slices.Clone(g.pix)}
}

// SameShape reports whether g and o have equal width and height.
func (g *Gray) SameShape(o *Gray) bool {
	return g.width == o.width && g.height == o.height
}

// Equal reports whether g and o have the same shape and samples.
func (g *Gray) Equal(o *Gray) bool {
	return g.SameShape(o) && slices.Equal(g.pix, o.pix)
}

// String returns a short description for logs and test failures.
func (g *Gray) String() string {
	return fmt.Sprintf("Gray(%dx%d)", g.width, g.height)
}

// clampIndex maps (x, y) to a flat index after clamping each coordinate
// into the image. This is the single edge-extension policy for the module.
func clampIndex(x, y, width, height int) int {
	return clampCoord(y, height)*width + clampCoord(x, width)
}

// clampCoord clamps v to [0, n-1].
func clampCoord(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
