package filter

import "github.com/gogpu/carve"

// Blur applies an n×n box blur, then rounds and clips the result.
type Blur struct {
	// Size is the kernel side length. It must be odd and positive.
	Size int

	// Workers is the number of goroutines used for correlation.
	// Zero or one runs synchronously.
	Workers int
}

// Apply implements Filter.
func (f Blur) Apply(img *carve.Gray) (*carve.Gray, error) {
	k, err := defaultKernelCache.get(kindBox, f.Size)
	if err != nil {
		return nil, err
	}
	return correlateFinished(img, k, f.Workers)
}

// Sharpen applies an unsharp mask 2·I − Blur(n), then rounds and clips.
type Sharpen struct {
	// Size is the side length of the blur being subtracted.
	Size int

	// Workers is the number of goroutines used for correlation.
	Workers int
}

// Apply implements Filter.
func (f Sharpen) Apply(img *carve.Gray) (*carve.Gray, error) {
	k, err := defaultKernelCache.get(kindSharpen, f.Size)
	if err != nil {
		return nil, err
	}
	return correlateFinished(img, k, f.Workers)
}

// Kernel applies an arbitrary kernel, then rounds and clips.
type Kernel struct {
	K       *carve.Kernel
	Workers int
}

// Apply implements Filter.
func (f Kernel) Apply(img *carve.Gray) (*carve.Gray, error) {
	return correlateFinished(img, f.K, f.Workers)
}

func correlateFinished(img *carve.Gray, k *carve.Kernel, workers int) (*carve.Gray, error) {
	out, err := carve.Correlate(img, k, carve.WithWorkers(workers))
	if err != nil {
		return nil, err
	}
	carve.Finish(out)
	return out, nil
}
