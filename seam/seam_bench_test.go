package seam

import "testing"

func BenchmarkStep(b *testing.B) {
	img := noisy(b, 320, 240)
	c := New()
	for i := 0; i < b.N; i++ {
		if _, _, err := c.Step(img); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCumulativeEnergy(b *testing.B) {
	e, err := Energy(Greyscale(noisy(b, 320, 240)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CumulativeEnergy(e)
	}
}
