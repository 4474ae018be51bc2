package filter

import "github.com/gogpu/carve"

// Invert maps every sample v to 255 − v.
type Invert struct{}

// Apply implements Filter.
func (Invert) Apply(img *carve.Gray) (*carve.Gray, error) {
	return carve.Map(img, func(v float64) float64 { return 255 - v }), nil
}
