package carve

import (
	"errors"
	"fmt"
)

// Common errors for grid and correlation operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative or
	// the pixel buffer length does not equal width*height.
	ErrInvalidDimensions = errors.New("carve: invalid dimensions")

	// ErrInvalidKernel is returned when a kernel size is even or non-positive,
	// or its weights do not form a size*size matrix.
	ErrInvalidKernel = errors.New("carve: invalid kernel")

	// ErrShapeMismatch is returned when an elementwise operation receives
	// images of different width or height.
	ErrShapeMismatch = errors.New("carve: image shape mismatch")
)

func shapeError(a, b *Gray) error {
	return fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, a, b)
}
