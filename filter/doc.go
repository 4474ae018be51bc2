// Package filter provides greyscale and color filters built on
// carve.Correlate.
//
// This package contains:
//   - Invert (255 - v, no kernel)
//   - Blur (n×n box kernel)
//   - Sharpen (unsharp mask 2·I − Blur(n))
//   - Edges (Sobel gradient magnitude)
//   - PerChannel, which adapts any greyscale filter to color images
//   - Cascade and ColorCascade, which chain filters in order
//
// Every filter returns a new, finished image and leaves its input untouched.
// Filters are plain values, so a configured filter can be stored, compared
// and reused:
//
//	blur := filter.Blur{Size: 5}
//	out, err := blur.Apply(img)
package filter
