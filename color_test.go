package carve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColorFromPix(t *testing.T) {
	_, err := NewColorFromPix(2, 2, make([]RGB, 3))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	c, err := NewColorFromPix(2, 1, []RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}})
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 4, G: 5, B: 6}, c.At(1, 0))
	assert.Equal(t, RGB{R: 4, G: 5, B: 6}, c.At(7, -3), "clamped lookup")
	assert.Equal(t, "Color(2x1)", c.String())
}

func TestColorCloneIsDeep(t *testing.T) {
	c, _ := NewColorFromPix(1, 1, []RGB{{R: 10, G: 20, B: 30}})
	d := c.Clone()
	d.Set(0, 0, RGB{})
	assert.Equal(t, RGB{R: 10, G: 20, B: 30}, c.At(0, 0))
	assert.False(t, c.Equal(d))
}

func TestSplitMergeChannels(t *testing.T) {
	c, _ := NewColorFromPix(3, 1, []RGB{{R: 255}, {G: 128}, {R: 1, G: 2, B: 3}})
	r, g, b := SplitChannels(c)

	assert.Equal(t, []float64{255, 0, 1}, r.Pix())
	assert.Equal(t, []float64{0, 128, 2}, g.Pix())
	assert.Equal(t, []float64{0, 0, 3}, b.Pix())

	back, err := MergeChannels(r, g, b)
	require.NoError(t, err)
	assert.True(t, c.Equal(back))
}

func TestMergeChannelsFinishesSamples(t *testing.T) {
	r, _ := NewGrayFromPix(2, 1, []float64{-3, 300})
	g, _ := NewGrayFromPix(2, 1, []float64{4.5, 5.4})
	b, _ := NewGrayFromPix(2, 1, []float64{0, 255})

	c, err := MergeChannels(r, g, b)
	require.NoError(t, err)
	assert.Equal(t, []RGB{{R: 0, G: 5, B: 0}, {R: 255, G: 5, B: 255}}, c.Pix())
}

func TestMergeChannelsShapeMismatch(t *testing.T) {
	r, _ := NewGray(2, 2)
	g, _ := NewGray(2, 2)
	b, _ := NewGray(4, 1)
	_, err := MergeChannels(r, g, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestLuma(t *testing.T) {
	tests := []struct {
		p    RGB
		want float64
	}{
		{RGB{}, 0},
		{RGB{R: 255}, 76},  // 76.245
		{RGB{G: 255}, 150}, // 149.685
		{RGB{B: 255}, 29},  // 29.07
		{RGB{R: 255, G: 255, B: 255}, 255},
		{RGB{R: 10, G: 20, B: 30}, 18}, // 2.99 + 11.74 + 3.42 = 18.15

		// Sums landing exactly on .5 round to even.
		{RGB{B: 250}, 28},        // 28.5
		{RGB{G: 4, B: 168}, 22},  // 21.5
		{RGB{G: 8, B: 86}, 14},   // 14.5
		{RGB{G: 14, B: 213}, 32}, // 32.5
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Luma(tt.p), "%+v", tt.p)
	}
}

func TestToGray(t *testing.T) {
	c, _ := NewColorFromPix(3, 1, []RGB{{R: 255}, {G: 255}, {B: 255}})
	g := ToGray(c)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, []float64{76, 150, 29}, g.Pix())
	assert.True(t, IsFinished(g))
}
