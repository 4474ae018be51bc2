package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/carve"
)

// DecodeColor decodes an image of any supported format into a color
// image. Alpha is dropped. The returned string names the format.
func DecodeColor(r io.Reader) (*carve.Color, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	c := colorFromImage(img)
	carve.Logger().Debug("imageio: decoded", "format", format, "image", c)
	return c, format, nil
}

// DecodeGray decodes a greyscale image. 8-bit grey images, and paletted
// images whose palette is all grey, are taken as they are. RGB images are
// projected to luma. Color-paletted, CMYK, 16-bit grey and alpha-only
// images fail with ErrUnsupportedPixelFormat.
func DecodeGray(r io.Reader) (*carve.Gray, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	g, err := grayFromImage(img)
	if err != nil {
		return nil, format, err
	}
	carve.Logger().Debug("imageio: decoded", "format", format, "image", g)
	return g, format, nil
}

// DecodeColorBytes decodes a color image held in memory.
func DecodeColorBytes(data []byte) (*carve.Color, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	c, _, err := DecodeColor(bytes.NewReader(data))
	return c, err
}

// DecodeGrayBytes decodes a greyscale image held in memory.
func DecodeGrayBytes(data []byte) (*carve.Gray, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	g, _, err := DecodeGray(bytes.NewReader(data))
	return g, err
}

// LoadColor reads a color image from path.
func LoadColor(path string) (*carve.Color, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, _, err := DecodeColor(f)
	return c, err
}

// LoadGray reads a greyscale image from path.
func LoadGray(path string) (*carve.Gray, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	g, _, err := DecodeGray(f)
	return g, err
}

func colorFromImage(img image.Image) *carve.Color {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
		b = nrgba.Bounds()
	}

	w, h := b.Dx(), b.Dy()
	pix := make([]carve.RGB, 0, w*h)
	for y := range h {
		row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range w {
			p := row[x*4 : x*4+3 : x*4+3]
			pix = append(pix, carve.RGB{R: p[0], G: p[1], B: p[2]})
		}
	}
	c, _ := carve.NewColorFromPix(w, h, pix)
	return c
}

func grayFromImage(img image.Image) (*carve.Gray, error) {
	switch m := img.(type) {
	case *image.Gray:
		b := m.Bounds()
		w, h := b.Dx(), b.Dy()
		pix := make([]float64, 0, w*h)
		for y := range h {
			row := m.Pix[m.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range w {
				pix = append(pix, float64(row[x]))
			}
		}
		return carve.NewGrayFromPix(w, h, pix)
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64,
		*image.YCbCr, *image.NYCbCrA:
		return carve.ToGray(colorFromImage(img)), nil
	case *image.Paletted:
		if !grayPalette(m.Palette) {
			return nil, fmt.Errorf("%w: %T with color palette", ErrUnsupportedPixelFormat, img)
		}
		b := m.Bounds()
		w, h := b.Dx(), b.Dy()
		pix := make([]float64, 0, w*h)
		for y := range h {
			row := m.Pix[m.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range w {
				r, _, _, _ := m.Palette[row[x]].RGBA()
				pix = append(pix, float64(r>>8))
			}
		}
		return carve.NewGrayFromPix(w, h, pix)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPixelFormat, img)
	}
}

// grayPalette reports whether every palette entry is an opaque grey.
// 8-bit grey BMP files decode this way.
func grayPalette(p color.Palette) bool {
	for _, c := range p {
		r, g, b, a := c.RGBA()
		if r != g || g != b || a != 0xffff {
			return false
		}
	}
	return true
}
