package carve

import (
	"fmt"
	"slices"
)

// Kernel is an n×n correlation matrix with odd n, stored row-major.
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel creates a kernel of the given size. The weights are copied.
// size must be odd and positive, and len(weights) must equal size*size.
func NewKernel(size int, weights []float64) (*Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidKernel, size)
	}
	if len(weights) != size*size {
		return nil, fmt.Errorf("%w: size %d needs %d weights, got %d",
			ErrInvalidKernel, size, size*size, len(weights))
	}
	return &Kernel{size: size, weights: slices.Clone(weights)}, nil
}

// IdentityKernel returns the n×n kernel with a single 1 at the center.
func IdentityKernel(size int) (*Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidKernel, size)
	}
	w := make([]float64, size*size)
	w[len(w)/2] = 1
	return &Kernel{size: size, weights: w}, nil
}

// Size returns the kernel side length.
func (k *Kernel) Size() int { return k.size }

// Weights returns a copy of the row-major weights.
func (k *Kernel) Weights() []float64 { return slices.Clone(k.weights) }

// Weight returns the weight at column kx, row ky.
func (k *Kernel) Weight(kx, ky int) float64 { return k.weights[kx+ky*k.size] }

// Center returns the index of the center weight.
func (k *Kernel) Center() int { return (k.size * k.size) / 2 }

// validate rejects kernels built without NewKernel.
func (k *Kernel) validate() error {
	if k == nil {
		return fmt.Errorf("%w: nil kernel", ErrInvalidKernel)
	}
	if k.size <= 0 || k.size%2 == 0 || len(k.weights) != k.size*k.size {
		return fmt.Errorf("%w: size %d with %d weights", ErrInvalidKernel, k.size, len(k.weights))
	}
	return nil
}
