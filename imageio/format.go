package imageio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an encoded image format.
type Format string

// Formats understood by the decoder. Only PNG, JPEG, BMP and TIFF can be
// encoded.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	WebP Format = "webp"
)

// JPEGQuality is the quality used when encoding JPEG.
const JPEGQuality = 95

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".webp":
		return WebP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encodable reports whether f can be written.
func (f Format) Encodable() bool {
	switch f {
	case PNG, JPEG, BMP, TIFF:
		return true
	default:
		return false
	}
}
