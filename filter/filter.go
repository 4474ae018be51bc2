package filter

import "github.com/gogpu/carve"

// Filter transforms a greyscale image into a new greyscale image.
type Filter interface {
	Apply(img *carve.Gray) (*carve.Gray, error)
}

// ColorFilter transforms a color image into a new color image.
type ColorFilter interface {
	ApplyColor(img *carve.Color) (*carve.Color, error)
}

// Cascade applies its filters in order, feeding each output to the next.
// An empty cascade returns a copy of the input.
type Cascade []Filter

// Apply implements Filter.
func (c Cascade) Apply(img *carve.Gray) (*carve.Gray, error) {
	out := img.Clone()
	for _, f := range c {
		next, err := f.Apply(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// ColorCascade applies color filters in order.
// An empty cascade returns a copy of the input.
type ColorCascade []ColorFilter

// ApplyColor implements ColorFilter.
func (c ColorCascade) ApplyColor(img *carve.Color) (*carve.Color, error) {
	out := img.Clone()
	for _, f := range c {
		next, err := f.ApplyColor(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}
