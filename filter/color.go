package filter

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/carve"
)

// PerChannel adapts a greyscale filter to color images by filtering the
// red, green and blue planes independently and recombining them.
//
// The three planes are processed concurrently. If any plane fails, the
// first error is returned and no image is produced.
type PerChannel struct {
	Filter Filter
}

// ApplyColor implements ColorFilter.
func (p PerChannel) ApplyColor(img *carve.Color) (*carve.Color, error) {
	planes := [3]*carve.Gray{}
	planes[0], planes[1], planes[2] = carve.SplitChannels(img)

	var g errgroup.Group
	for i := range planes {
		g.Go(func() error {
			out, err := p.Filter.Apply(planes[i])
			if err != nil {
				return fmt.Errorf("filter: channel %d: %w", i, err)
			}
			planes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return carve.MergeChannels(planes[0], planes[1], planes[2])
}
