// Package imageio converts between encoded image files and the carve
// image types.
//
// Decoding understands PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding writes
// PNG, JPEG, BMP and TIFF. File helpers pick the codec from the extension:
//
//	img, err := imageio.LoadColor("in.png")
//	...
//	err = imageio.SaveColor("out.bmp", img)
//
// Greyscale decoding accepts 8-bit grey images as they are and projects
// RGB images with carve.Luma. Other pixel formats are rejected with
// ErrUnsupportedPixelFormat rather than guessed at.
package imageio
