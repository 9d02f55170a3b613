package utils

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HexToRGBA converts a color given in "#rrggbb" or "#rgb" notation to an opaque color.RGBA.
func HexToRGBA(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
