package seam

import "errors"

var (
	// ErrInvalidSeamCount is returned when the number of columns to remove
	// is negative or would leave the image with no columns.
	ErrInvalidSeamCount = errors.New("seam: invalid seam count")

	// ErrInvalidSeam is returned when a seam does not hold exactly one
	// connected, in-range index per row of the image it is removed from.
	ErrInvalidSeam = errors.New("seam: invalid seam")
)
