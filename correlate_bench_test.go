package carve

import (
	"fmt"
	"testing"
)

// BenchmarkCorrelate compares sequential and banded correlation.
func BenchmarkCorrelate(b *testing.B) {
	img := randomGray(b, 640, 480, 7)

	benchmarks := []struct {
		size    int
		workers int
	}{
		{3, 1},
		{3, 4},
		{9, 1},
		{9, 4},
	}

	for _, bm := range benchmarks {
		k, err := NewKernel(bm.size, ones(bm.size*bm.size))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("k%d_w%d", bm.size, bm.workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Correlate(img, k, WithWorkers(bm.workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFinish measures the in-place round-and-clip pass.
func BenchmarkFinish(b *testing.B) {
	img := randomGray(b, 640, 480, 8)
	for i := 0; i < b.N; i++ {
		Finish(img)
	}
}
