package seam

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/carve"
)

// Carver removes low-energy seams from color images.
// A Carver holds configuration only and is safe for concurrent use.
type Carver struct {
	logger   *slog.Logger
	progress func(done, total int)
	workers  int
}

// New creates a Carver with the given options.
func New(opts ...Option) *Carver {
	c := &Carver{workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Carve removes ncols columns from img using the default Carver.
func Carve(img *carve.Color, ncols int, opts ...Option) (*carve.Color, error) {
	return New(opts...).Carve(img, ncols)
}

func (c *Carver) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return carve.Logger()
}

// Carve removes ncols minimum-energy seams from img and returns an image of
// width img.Width()−ncols. Removing zero columns returns an equal copy.
// ncols must be non-negative and smaller than the image width; otherwise
// ErrInvalidSeamCount is returned before any work is done.
func (c *Carver) Carve(img *carve.Color, ncols int) (*carve.Color, error) {
	if ncols < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeamCount, ncols)
	}
	if ncols == 0 {
		return img.Clone(), nil
	}
	if ncols >= img.Width() {
		return nil, fmt.Errorf("%w: cannot remove %d of %d columns",
			ErrInvalidSeamCount, ncols, img.Width())
	}

	log := c.log()
	work := img.Clone()
	for i := range ncols {
		next, s, err := c.Step(work)
		if err != nil {
			return nil, fmt.Errorf("seam: iteration %d: %w", i, err)
		}
		if len(s) > 0 {
			log.Debug("seam: removed",
				"iteration", i,
				"width", next.Width(),
				"bottom_x", s[0]%work.Width())
		}
		work = next
		if c.progress != nil {
			c.progress(i+1, ncols)
		}
	}
	return work, nil
}

// Step removes a single minimum-energy seam from img and returns the
// narrower image together with the seam that was removed.
func (c *Carver) Step(img *carve.Color) (*carve.Color, Seam, error) {
	if img.Width() < 2 {
		return nil, nil, fmt.Errorf("%w: cannot narrow width %d", ErrInvalidSeamCount, img.Width())
	}
	energy, err := energyWith(Greyscale(img), c.workers)
	if err != nil {
		return nil, nil, err
	}
	s := MinimumSeam(CumulativeEnergy(energy))
	out, err := RemoveSeam(img, s)
	if err != nil {
		return nil, nil, err
	}
	return out, s, nil
}
