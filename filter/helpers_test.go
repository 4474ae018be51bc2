package filter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/carve"
)

// Test helper functions shared across filter tests.

// grayFrom builds a greyscale image from integer rows.
func grayFrom(t testing.TB, width int, pix ...float64) *carve.Gray {
	t.Helper()
	g, err := carve.NewGrayFromPix(width, len(pix)/width, pix)
	require.NoError(t, err)
	return g
}

// filled creates a w×h image with every sample set to v.
func filled(t testing.TB, w, h int, v float64) *carve.Gray {
	t.Helper()
	pix := make([]float64, w*h)
	for i := range pix {
		pix[i] = v
	}
	return grayFrom(t, w, pix...)
}

// centeredPixel returns the 11×11 black image with a single 255 at (5, 5).
func centeredPixel(t testing.TB) *carve.Gray {
	t.Helper()
	g := filled(t, 11, 11, 0)
	g.Set(5, 5, 255)
	return g
}

// square returns an 11×11 image that is v inside the n×n block centered
// at (5, 5) and 0 elsewhere.
func square(t testing.TB, n int, v float64) *carve.Gray {
	t.Helper()
	g := filled(t, 11, 11, 0)
	lo, hi := 5-n/2, 5+n/2
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			g.Set(x, y, v)
		}
	}
	return g
}

// gradient returns a w×h image with a diagonal ramp of integer samples.
func gradient(t testing.TB, w, h int) *carve.Gray {
	t.Helper()
	pix := make([]float64, w*h)
	for y := range h {
		for x := range w {
			pix[y*w+x] = float64((x*37 + y*11) % 256)
		}
	}
	return grayFrom(t, w, pix...)
}
