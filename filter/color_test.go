package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/carve"
)

func colorFrom(t testing.TB, width int, pix ...carve.RGB) *carve.Color {
	t.Helper()
	c, err := carve.NewColorFromPix(width, len(pix)/width, pix)
	require.NoError(t, err)
	return c
}

func TestPerChannelInvert(t *testing.T) {
	img := colorFrom(t, 2, carve.RGB{R: 0, G: 10, B: 255}, carve.RGB{R: 100, G: 200, B: 50})
	out, err := PerChannel{Filter: Invert{}}.ApplyColor(img)
	require.NoError(t, err)
	assert.Equal(t, []carve.RGB{{R: 255, G: 245, B: 0}, {R: 155, G: 55, B: 205}}, out.Pix())
}

func TestPerChannelMatchesGreyscaleFilter(t *testing.T) {
	pix := make([]carve.RGB, 9*7)
	for i := range pix {
		pix[i] = carve.RGB{R: uint8(i * 3), G: uint8(255 - i), B: uint8(i * i % 256)}
	}
	img := colorFrom(t, 9, pix...)

	out, err := PerChannel{Filter: Blur{Size: 3}}.ApplyColor(img)
	require.NoError(t, err)
	require.Equal(t, 9, out.Width())
	require.Equal(t, 7, out.Height())

	r, g, b := carve.SplitChannels(img)
	wantR, _ := Blur{Size: 3}.Apply(r)
	wantG, _ := Blur{Size: 3}.Apply(g)
	wantB, _ := Blur{Size: 3}.Apply(b)
	want, err := carve.MergeChannels(wantR, wantG, wantB)
	require.NoError(t, err)
	assert.True(t, want.Equal(out))
}

type failingFilter struct{ err error }

func (f failingFilter) Apply(*carve.Gray) (*carve.Gray, error) { return nil, f.err }

func TestPerChannelError(t *testing.T) {
	boom := errors.New("boom")
	img := colorFrom(t, 1, carve.RGB{})
	out, err := PerChannel{Filter: failingFilter{err: boom}}.ApplyColor(img)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

func TestColorCascade(t *testing.T) {
	img := colorFrom(t, 3, carve.RGB{R: 1}, carve.RGB{G: 2}, carve.RGB{B: 3})
	c := ColorCascade{PerChannel{Filter: Invert{}}, PerChannel{Filter: Invert{}}}
	out, err := c.ApplyColor(img)
	require.NoError(t, err)
	assert.True(t, img.Equal(out))

	empty, err := ColorCascade{}.ApplyColor(img)
	require.NoError(t, err)
	assert.True(t, img.Equal(empty))
	assert.NotSame(t, img, empty)
}
