package seam

import (
	"fmt"

	"github.com/gogpu/carve"
)

// Seam is a connected top-to-bottom path of flat pixel indices, one per
// row, ordered from the bottom row up.
type Seam []int

// MinimumSeam returns the lowest-cost seam through a cumulative energy map.
//
// The bottom row's minimum picks the starting column; ties go to the
// leftmost column. Walking up, the candidates x−1, x and x+1 (each clamped
// into the image) are tested in that order and the best is replaced only
// on strict improvement, so on equal costs left beats center beats right.
func MinimumSeam(cem *carve.Gray) Seam {
	w, h := cem.Width(), cem.Height()
	if w == 0 || h == 0 {
		return nil
	}

	bottom := h - 1
	x := 0
	for cx := 1; cx < w; cx++ {
		if cem.At(cx, bottom) < cem.At(x, bottom) {
			x = cx
		}
	}

	s := make(Seam, 0, h)
	s = append(s, cem.Index(x, bottom))

	for y := bottom - 1; y >= 0; y-- {
		best, _ := cem.Clamp(x-1, y)
		bestV := cem.At(best, y)
		for _, dx := range [...]int{0, 1} {
			cx, _ := cem.Clamp(x+dx, y)
			if v := cem.At(cx, y); v < bestV {
				best, bestV = cx, v
			}
		}
		x = best
		s = append(s, cem.Index(x, y))
	}

	return s
}

// Columns returns the column of each seam entry for an image of the
// given width, in seam order.
func (s Seam) Columns(width int) []int {
	cols := make([]int, len(s))
	for i, idx := range s {
		cols[i] = idx % width
	}
	return cols
}

// validate checks that s holds exactly one in-range index per row of a
// width×height image and that adjacent rows differ by at most one column.
// Entry order does not matter.
func (s Seam) validate(width, height int) error {
	if len(s) != height {
		return fmt.Errorf("%w: %d entries for height %d", ErrInvalidSeam, len(s), height)
	}
	cols := make([]int, height)
	for i := range cols {
		cols[i] = -1
	}
	for _, idx := range s {
		if idx < 0 || idx >= width*height {
			return fmt.Errorf("%w: index %d outside %dx%d", ErrInvalidSeam, idx, width, height)
		}
		row := idx / width
		if cols[row] >= 0 {
			return fmt.Errorf("%w: row %d visited twice", ErrInvalidSeam, row)
		}
		cols[row] = idx % width
	}
	for y := 1; y < height; y++ {
		if abs(cols[y]-cols[y-1]) > 1 {
			return fmt.Errorf("%w: rows %d and %d are not connected", ErrInvalidSeam, y-1, y)
		}
	}
	return nil
}

// RemoveSeam returns a new image one column narrower than img, holding
// every pixel not on the seam in its original row-major order. img is not
// modified.
func RemoveSeam(img *carve.Color, s Seam) (*carve.Color, error) {
	w, h := img.Width(), img.Height()
	if w == 0 {
		return nil, fmt.Errorf("%w: image has no columns", ErrInvalidSeam)
	}
	if err := s.validate(w, h); err != nil {
		return nil, err
	}

	drop := make([]bool, w*h)
	for _, idx := range s {
		drop[idx] = true
	}

	pix := make([]carve.RGB, 0, (w-1)*h)
	for i, p := range img.Pix() {
		if !drop[i] {
			pix = append(pix, p)
		}
	}
	return carve.NewColorFromPix(w-1, h, pix)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
