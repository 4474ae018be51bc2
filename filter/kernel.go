package filter

import (
	"fmt"
	"sync"

	"github.com/gogpu/carve"
)

// Sobel kernels in row-major order.
var (
	sobelX = []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}
	sobelY = []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
)

// BoxKernel returns the n×n kernel whose weights are all 1/n².
// n must be odd and positive.
func BoxKernel(n int) (*carve.Kernel, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	w := make([]float64, n*n)
	val := 1 / float64(n*n)
	for i := range w {
		w[i] = val
	}
	return carve.NewKernel(n, w)
}

// SharpenKernel returns the n×n unsharp-mask kernel 2·I − Box(n):
// every weight is −1/n² except the center, which is 2 − 1/n².
func SharpenKernel(n int) (*carve.Kernel, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	w := make([]float64, n*n)
	val := -1 / float64(n*n)
	for i := range w {
		w[i] = val
	}
	w[(n*n)/2] += 2
	return carve.NewKernel(n, w)
}

var (
	sobelXKernel = mustKernel(3, sobelX)
	sobelYKernel = mustKernel(3, sobelY)
)

// SobelX returns the horizontal Sobel kernel.
func SobelX() *carve.Kernel { return sobelXKernel }

// SobelY returns the vertical Sobel kernel.
func SobelY() *carve.Kernel { return sobelYKernel }

func mustKernel(n int, w []float64) *carve.Kernel {
	k, err := carve.NewKernel(n, w)
	if err != nil {
		panic(err)
	}
	return k
}

func checkSize(n int) error {
	if n <= 0 || n%2 == 0 {
		return fmt.Errorf("%w: size %d", carve.ErrInvalidKernel, n)
	}
	return nil
}

// kernelKind selects a kernel family in the cache.
type kernelKind uint8

const (
	kindBox kernelKind = iota
	kindSharpen
)

type kernelKey struct {
	kind kernelKind
	size int
}

// kernelCache caches generated kernels by family and size. Kernels are
// immutable, so one instance is shared by every caller.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[kernelKey]*carve.Kernel
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[kernelKey]*carve.Kernel),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(kind kernelKind, size int) (*carve.Kernel, error) {
	key := kernelKey{kind: kind, size: size}

	c.mu.RLock()
	if k, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return k, nil
	}
	c.mu.RUnlock()

	var (
		k   *carve.Kernel
		err error
	)
	switch kind {
	case kindSharpen:
		k, err = SharpenKernel(size)
	default:
		k, err = BoxKernel(size)
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Drop half the entries; sizes in use are re-created on demand.
		count := 0
		for key := range c.cache {
			delete(c.cache, key)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = k
	c.mu.Unlock()

	return k, nil
}

// len returns the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
