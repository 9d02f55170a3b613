package main

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/esimov/seamcarver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomImage(seed int64, width, height int) *image.NRGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rnd.Intn(256)),
				G: uint8(rnd.Intn(256)),
				B: uint8(rnd.Intn(256)),
				A: 0xff,
			})
		}
	}
	return img
}

func TestInteractive_Commands(t *testing.T) {
	c, err := seamcarver.NewCarver(randomImage(1, 5, 4))
	require.NoError(t, err)

	var out bytes.Buffer
	err = runInteractive(strings.NewReader("v v\nh x\nquit v\n"), &out, c)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Width())
	assert.Equal(t, 3, c.Height())

	sizes := []string{}
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Image is") {
			sizes = append(sizes, line)
		}
	}
	assert.Equal(t, []string{
		"Image is 4x4 pixels",
		"Image is 3x4 pixels",
		"Image is 3x3 pixels",
		"Image is 3x3 pixels",
	}, sizes)
	assert.Contains(t, out.String(), "Type h for horizontal seam or v for vertical seam.")
}

func TestInteractive_EndOfInput(t *testing.T) {
	c, err := seamcarver.NewCarver(randomImage(2, 4, 4))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runInteractive(strings.NewReader("h"), &out, c))
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())
}

func TestInteractive_CannotShrinkFurther(t *testing.T) {
	c, err := seamcarver.NewCarver(randomImage(3, 1, 3))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runInteractive(strings.NewReader("v quit"), &out, c))

	assert.Equal(t, 1, c.Width())
	assert.Contains(t, out.String(), "Image is 1x3 pixels")
	assert.NotContains(t, out.String(), "Vertical seam removed!")
}
