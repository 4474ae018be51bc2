package carve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGray(t *testing.T) {
	g, err := NewGray(6, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Len(t, g.Pix(), 30)
	assert.False(t, g.Empty())
}

func TestNewGrayZeroArea(t *testing.T) {
	g, err := NewGray(0, 7)
	require.NoError(t, err)
	assert.True(t, g.Empty())
}

func TestNewGrayNegative(t *testing.T) {
	_, err := NewGray(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestNewGrayFromPixLength(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		n       int
		wantErr bool
	}{
		{"exact", 3, 2, 6, false},
		{"short", 3, 2, 5, true},
		{"long", 3, 2, 7, true},
		{"empty", 0, 0, 0, false},
		{"negative", -2, -3, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrayFromPix(tt.w, tt.h, make([]float64, tt.n))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGrayAtClampsToEdges(t *testing.T) {
	// 3x2:
	//   1 2 3
	//   4 5 6
	g, err := NewGrayFromPix(3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 1},
		{2, 1, 6},
		{-1, 0, 1},
		{-5, -5, 1},
		{3, 0, 3},
		{100, -1, 3},
		{1, 2, 5},
		{-1, 9, 4},
		{9, 9, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.At(tt.x, tt.y), "At(%d, %d)", tt.x, tt.y)
	}
}

func TestGraySetAndIndex(t *testing.T) {
	g, _ := NewGray(4, 3)
	g.Set(3, 2, 42)
	assert.Equal(t, 11, g.Index(3, 2))
	assert.Equal(t, 42.0, g.Pix()[11])
	assert.Equal(t, 42.0, g.At(3, 2))
}

func TestGrayCloneIsDeep(t *testing.T) {
	g, _ := NewGrayFromPix(2, 1, []float64{1, 2})
	c := g.Clone()
	c.Set(0, 0, 99)
	assert.Equal(t, 1.0, g.At(0, 0))
	assert.False(t, g.Equal(c))
}

func TestGrayEqual(t *testing.T) {
	a, _ := NewGrayFromPix(2, 2, []float64{1, 2, 3, 4})
	b, _ := NewGrayFromPix(2, 2, []float64{1, 2, 3, 4})
	c, _ := NewGrayFromPix(4, 1, []float64{1, 2, 3, 4})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "same samples, different shape")
}

func TestGrayClamp(t *testing.T) {
	g, _ := NewGray(4, 3)
	tests := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 0, 0},
		{4, 3, 3, 2},
		{2, 1, 2, 1},
		{10, -10, 3, 0},
	}
	for _, tt := range tests {
		x, y := g.Clamp(tt.x, tt.y)
		assert.Equal(t, tt.wx, x, "x for (%d, %d)", tt.x, tt.y)
		assert.Equal(t, tt.wy, y, "y for (%d, %d)", tt.x, tt.y)
	}
}
