package seamcarver

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/seamcarver/imop"
	"github.com/esimov/seamcarver/utils"
)

// DefaultSeamColor is the color used to render the seams when no other is provided.
var DefaultSeamColor = color.RGBA{R: 0xff, A: 0xff}

// EnergyImage renders the energy map as a grayscale image,
// where the most important pixels are the brightest.
func EnergyImage(m *EnergyMap) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, m.width, m.height))

	maxEnergy := m.Max()
	if maxEnergy == 0 {
		return dst
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			lum := m.Get(x, y) / maxEnergy * 0xff
			dst.SetGray(x, y, color.Gray{Y: uint8(utils.Clamp(lum+0.5, 0, 0xff))})
		}
	}
	return dst
}

// DrawSeam returns a copy of img with the seam painted over it in the given color.
// Translucent colors are composited over the underlying pixels.
func DrawSeam(img image.Image, seam Seam, axis Axis, col color.Color) *image.NRGBA {
	// The source-over operator is always supported.
	dst, _ := DrawSeamOp(img, seam, axis, col, imop.SrcOver)
	return dst
}

// DrawSeamOp is like DrawSeam, but mixes the seam color with the underlying
// pixels using the given Porter-Duff operator.
func DrawSeamOp(img image.Image, seam Seam, axis Axis, col color.Color, operator imop.Operator) (*image.NRGBA, error) {
	op := imop.InitOp()
	if err := op.Set(operator); err != nil {
		return nil, err
	}

	b := img.Bounds()
	dst := image.NewNRGBA(b.Sub(b.Min))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	if col == nil {
		col = DefaultSeamColor
	}
	for _, p := range seam.Points(axis) {
		if p.In(dst.Bounds()) {
			dst.SetNRGBA(p.X, p.Y, op.Compose(col, dst.At(p.X, p.Y)))
		}
	}
	return dst, nil
}
