package carve

import (
	"math"

	"github.com/gogpu/carve/internal/parallel"
)

// Correlate computes the correlation of img with k and returns a new image
// of the same shape. The result is neither rounded nor clipped; call Finish
// on it to obtain a valid greyscale image.
//
// For each output pixel (x, y):
//
//	out(x, y) = Σ img.At(x-mid+kx, y-mid+ky) * k.Weight(kx, ky),  mid = n/2
//
// Neighbors outside the image use the clamped edge pixel (see Gray.At), so
// kernels larger than the image are legal. The input is not modified.
func Correlate(img *Gray, k *Kernel, opts ...Option) (*Gray, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}

	out := newGrayLike(img)
	if img.Empty() {
		return out, nil
	}

	o := buildOptions(opts)
	o.logger.Debug("carve: correlate",
		"width", img.width,
		"height", img.height,
		"kernel", k.size,
		"workers", o.workers)

	parallel.ForEachBand(img.height, o.workers, func(b parallel.Band) {
		correlateRows(img, k, out, b.Y0, b.Y1)
	})

	return out, nil
}

// correlateRows fills rows [y0, y1) of out.
func correlateRows(img *Gray, k *Kernel, out *Gray, y0, y1 int) {
	n := k.size
	mid := n / 2
	for y := y0; y < y1; y++ {
		row := out.pix[y*out.width : (y+1)*out.width]
		for x := range row {
			var sum float64
			for ky := 0; ky < n; ky++ {
				for kx := 0; kx < n; kx++ {
					// Explicit conversion prevents FMA fusion.
					sum += float64(img.At(x-mid+kx, y-mid+ky) * k.weights[kx+ky*n])
				}
			}
			row[x] = sum
		}
	}
}

// Finish maps every sample of img into a valid pixel value in place:
// negative values become 0, values above 255 become 255, and everything
// else is rounded half away from zero (4.2 → 4, 5.6 → 6, 2.5 → 3).
//
// Finish is idempotent. Library code only applies it to images it has just
// allocated.
func Finish(img *Gray) {
	for i, v := range img.pix {
		img.pix[i] = finishSample(v)
	}
}

// Finished returns a finished copy of img, leaving img untouched.
func Finished(img *Gray) *Gray {
	out := img.Clone()
	Finish(out)
	return out
}

// IsFinished reports whether every sample is an integer in [0, 255].
func IsFinished(img *Gray) bool {
	for _, v := range img.pix {
		if !IsPixelValue(v) {
			return false
		}
	}
	return true
}

// IsPixelValue reports whether v is an integer in [0, 255], the form every
// sample takes after Finish. NaN is not a pixel value.
func IsPixelValue(v float64) bool {
	return v >= 0 && v <= 255 && v == math.Trunc(v)
}

func finishSample(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return math.Round(v)
	}
}

func finishByte(v float64) uint8 {
	return uint8(finishSample(v))
}

// Map returns a new image with fn applied to every sample of img.
func Map(img *Gray, fn func(float64) float64) *Gray {
	out := newGrayLike(img)
	for i, v := range img.pix {
		out.pix[i] = fn(v)
	}
	return out
}

// Combine merges two equal-shaped images sample by sample.
// It fails with ErrShapeMismatch when the shapes differ.
func Combine(a, b *Gray, fn func(x, y float64) float64) (*Gray, error) {
	if !a.SameShape(b) {
		return nil, shapeError(a, b)
	}
	out := newGrayLike(a)
	for i := range out.pix {
		out.pix[i] = fn(a.pix[i], b.pix[i])
	}
	return out, nil
}
