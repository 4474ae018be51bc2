package seam

import (
	"github.com/gogpu/carve"
	"github.com/gogpu/carve/filter"
)

// Greyscale projects a color image onto luma (see carve.Luma).
// The result is finished.
func Greyscale(img *carve.Color) *carve.Gray {
	return carve.ToGray(img)
}

// Energy returns the Sobel edge magnitude of a greyscale image.
func Energy(grey *carve.Gray) (*carve.Gray, error) {
	return energyWith(grey, 1)
}

func energyWith(grey *carve.Gray, workers int) (*carve.Gray, error) {
	return filter.Edges{Workers: workers}.Apply(grey)
}

// CumulativeEnergy builds the dynamic-programming table of minimum path
// costs. Row 0 equals the energy. Every later cell adds the minimum of the
// three cells above it (up-left, up, up-right), where neighbors past the
// left or right edge repeat the edge column.
//
// The result may hold values above 255.
func CumulativeEnergy(energy *carve.Gray) *carve.Gray {
	cem := energy.Clone()
	for y := 1; y < cem.Height(); y++ {
		for x := range cem.Width() {
			above := min(cem.At(x-1, y-1), cem.At(x, y-1), cem.At(x+1, y-1))
			cem.Set(x, y, cem.At(x, y)+above)
		}
	}
	return cem
}
