package imageio

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/carve"
)

// EncodeColor writes c to w in the given format.
func EncodeColor(w io.Writer, c *carve.Color, f Format) error {
	if !f.Encodable() {
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, f)
	}
	return encode(w, colorToImage(c), f)
}

// EncodeGray writes g to w in the given format. Every sample must be an
// integer in [0, 255]; finish the image first if it is not.
func EncodeGray(w io.Writer, g *carve.Gray, f Format) error {
	if !f.Encodable() {
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, f)
	}
	img, err := grayToImage(g)
	if err != nil {
		return err
	}
	return encode(w, img, f)
}

// SaveColor writes c to path, choosing the format from the extension.
func SaveColor(path string, c *carve.Color) error {
	return save(path, func(w io.Writer, f Format) error { return EncodeColor(w, c, f) })
}

// SaveGray writes g to path, choosing the format from the extension.
func SaveGray(path string, g *carve.Gray) error {
	return save(path, func(w io.Writer, f Format) error { return EncodeGray(w, g, f) })
}

func save(path string, enc func(io.Writer, Format) error) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if !f.Encodable() {
		return fmt.Errorf("%w: cannot encode %q", ErrUnsupportedFormat, f)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := enc(file, f); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

func colorToImage(c *carve.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	for i, p := range c.Pix() {
		img.Pix[i*4+0] = p.R
		img.Pix[i*4+1] = p.G
		img.Pix[i*4+2] = p.B
		img.Pix[i*4+3] = 0xff
	}
	return img
}

func grayToImage(g *carve.Gray) (*image.Gray, error) {
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	for i, v := range g.Pix() {
		if !carve.IsPixelValue(v) {
			return nil, fmt.Errorf("%w: %v at (%d, %d)", ErrSampleOutOfRange, v, i%g.Width(), i/g.Width())
		}
		img.Pix[i] = uint8(v)
	}
	return img, nil
}
