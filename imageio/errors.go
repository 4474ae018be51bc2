package imageio

import "errors"

// I/O errors.
var (
	// ErrUnsupportedFormat is returned for a file format that cannot be
	// read or written.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrUnsupportedPixelFormat is returned when a decoded image uses a
	// color model that has no greyscale reading.
	ErrUnsupportedPixelFormat = errors.New("imageio: unsupported pixel format")

	// ErrSampleOutOfRange is returned when a greyscale sample is not an
	// integer in [0, 255].
	ErrSampleOutOfRange = errors.New("imageio: sample out of range")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)
