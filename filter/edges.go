package filter

import (
	"math"

	"github.com/gogpu/carve"
)

// Edges computes the Sobel gradient magnitude sqrt(gx² + gy²) of an image,
// then rounds and clips it. A constant image yields all zeros.
type Edges struct {
	// Workers is the number of goroutines used for each correlation.
	Workers int
}

// Apply implements Filter.
func (f Edges) Apply(img *carve.Gray) (*carve.Gray, error) {
	gx, err := carve.Correlate(img, SobelX(), carve.WithWorkers(f.Workers))
	if err != nil {
		return nil, err
	}
	gy, err := carve.Correlate(img, SobelY(), carve.WithWorkers(f.Workers))
	if err != nil {
		return nil, err
	}
	out, err := carve.Combine(gx, gy, magnitude)
	if err != nil {
		return nil, err
	}
	carve.Finish(out)
	return out, nil
}

func magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
