package seamcarver

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Color is a single pixel value. The energy function only looks at the
// R, G and B channels, the alpha channel is carried along for the export.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// RGBA implements the color.Color interface. The channels are not premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Grid is the mutable pixel store the carver works on.
// The backing array keeps the stride of the source image, while the logical
// width and height shrink each time a seam is removed.
type Grid struct {
	pix    []Color
	stride int
	width  int
	height int
}

// NewGrid creates a grid holding an independent copy of the source image.
func NewGrid(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, errors.Wrap(ErrInvalidImage, "nil image")
	}
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	if dx <= 0 || dy <= 0 {
		return nil, errors.Wrapf(ErrInvalidImage, "empty image of size %dx%d", dx, dy)
	}

	// imaging.Clone always returns a fresh NRGBA image with the min point at (0, 0).
	src := imaging.Clone(img)
	g := newGrid(dx, dy)
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			i := src.PixOffset(x, y)
			g.pix[y*g.stride+x] = Color{
				R: src.Pix[i],
				G: src.Pix[i+1],
				B: src.Pix[i+2],
				A: src.Pix[i+3],
			}
		}
	}
	return g, nil
}

func newGrid(width, height int) *Grid {
	return &Grid{
		pix:    make([]Color, width*height),
		stride: width,
		width:  width,
		height: height,
	}
}

// Dimensions returns the current logical width and height.
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// Width returns the current number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the current number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the color at the given column and row.
func (g *Grid) At(col, row int) (Color, error) {
	if !g.inBounds(col, row) {
		return Color{}, errors.Wrapf(ErrOutOfRange, "pixel (%d, %d) outside %dx%d", col, row, g.width, g.height)
	}
	return g.at(col, row), nil
}

// at reads a pixel without bounds checking.
func (g *Grid) at(col, row int) Color {
	return g.pix[row*g.stride+col]
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Image exports the current grid as a row-major NRGBA image.
func (g *Grid) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		di := dst.PixOffset(0, y)
		for x := 0; x < g.width; x++ {
			c := g.at(x, y)
			dst.Pix[di+0] = c.R
			dst.Pix[di+1] = c.G
			dst.Pix[di+2] = c.B
			dst.Pix[di+3] = c.A
			di += 4
		}
	}
	return dst
}

// Transpose returns a new, independent grid where (col, row) maps to
// (row, col) of the receiver.
func (g *Grid) Transpose() *Grid {
	t := newGrid(g.height, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			t.pix[x*t.stride+y] = g.at(x, y)
		}
	}
	return t
}

// RemoveColumn removes one pixel from every row, at the column given by the
// seam for that row, and shrinks the width by one. The seam is validated
// before the grid is touched, so a failed call leaves the grid unchanged.
func (g *Grid) RemoveColumn(seam Seam) error {
	if err := seam.validate(g.height, g.width); err != nil {
		return err
	}
	for row, col := range seam {
		start := row * g.stride
		copy(g.pix[start+col:start+g.width-1], g.pix[start+col+1:start+g.width])
	}
	g.width--
	return nil
}

// RemoveRow removes one pixel from every column, at the row given by the
// seam for that column, and shrinks the height by one. The work is delegated
// to RemoveColumn on a transposed copy, which is then written back.
func (g *Grid) RemoveRow(seam Seam) error {
	t := g.Transpose()
	if err := t.RemoveColumn(seam); err != nil {
		return err
	}
	g.height--
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.pix[y*g.stride+x] = t.at(y, x)
		}
	}
	return nil
}
