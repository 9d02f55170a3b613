package seamcarver

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coordImage encodes the coordinates of every pixel into its red and green channels.
func coordImage(width, height int) *Grid {
	g, _ := NewGrid(newImage(width, height, func(x, y int) color.NRGBA {
		return color.NRGBA{R: uint8(x), G: uint8(y), B: 0x7f, A: 0xff}
	}))
	return g
}

func TestGrid_Dimensions(t *testing.T) {
	g := coordImage(4, 3)

	w, h := g.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
}

func TestGrid_At(t *testing.T) {
	g := coordImage(4, 3)

	c, err := g.At(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 3, G: 2, B: 0x7f, A: 0xff}, c)

	_, err = g.At(4, 0)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = g.At(0, -1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestGrid_Transpose(t *testing.T) {
	g := coordImage(4, 3)
	tr := g.Transpose()

	w, h := tr.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 4, h)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			c, err := tr.At(x, y)
			require.NoError(t, err)
			assert.Equal(t, Color{R: uint8(y), G: uint8(x), B: 0x7f, A: 0xff}, c)
		}
	}

	// The transposed grid is an independent copy.
	require.NoError(t, tr.RemoveColumn(Seam{0, 0, 0, 0}))
	w, _ = g.Dimensions()
	assert.Equal(t, 4, w)
}

func TestGrid_ImageIsSnapshot(t *testing.T) {
	g := coordImage(3, 3)

	img := g.Image()
	img.SetNRGBA(1, 1, color.NRGBA{})

	c, err := g.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Color{R: 1, G: 1, B: 0x7f, A: 0xff}, c)
}

func TestGrid_RemoveColumnsAndRows(t *testing.T) {
	g := coordImage(5, 4)

	require.NoError(t, g.RemoveColumn(Seam{4, 3, 2, 1}))
	require.NoError(t, g.RemoveRow(Seam{0, 1, 2, 3}))
	require.NoError(t, g.RemoveColumn(Seam{0, 0, 1}))

	w, h := g.Dimensions()
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)

	// Expected source coordinates of the remaining pixels, row by row.
	want := [3][3][2]uint8{
		{{1, 0}, {2, 0}, {3, 0}},
		{{1, 2}, {2, 1}, {4, 1}},
		{{0, 3}, {3, 3}, {4, 2}},
	}
	img := g.Image()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			px := img.NRGBAAt(x, y)
			assert.Equal(t, want[y][x], [2]uint8{px.R, px.G}, "pixel (%d, %d)", x, y)
		}
	}
}

func TestGrid_ColorImplementsColorModel(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 0xff}
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}, got)
}
