package seamcarver

import (
	"image"

	"github.com/pkg/errors"
)

// Carver resizes an image by finding and removing seams of minimum energy.
// A Carver owns its own copy of the image and is not safe for concurrent use.
type Carver struct {
	grid *Grid
}

// NewCarver creates a carver working on a copy of img.
func NewCarver(img image.Image) (*Carver, error) {
	g, err := NewGrid(img)
	if err != nil {
		return nil, err
	}
	return &Carver{grid: g}, nil
}

// Image returns a snapshot of the current image.
func (c *Carver) Image() *image.NRGBA {
	return c.grid.Image()
}

// Width returns the current image width.
func (c *Carver) Width() int {
	return c.grid.Width()
}

// Height returns the current image height.
func (c *Carver) Height() int {
	return c.grid.Height()
}

// Energy returns the energy of the pixel at (col, row).
func (c *Carver) Energy(col, row int) (float64, error) {
	return c.grid.Energy(col, row)
}

// EnergyMap computes the energy field of the current image.
func (c *Carver) EnergyMap() *EnergyMap {
	return c.grid.EnergyMap()
}

// FindVerticalSeam returns the column indices, one per row, of the vertical seam of minimum energy.
func (c *Carver) FindVerticalSeam() Seam {
	return c.grid.FindVerticalSeam()
}

// FindHorizontalSeam returns the row indices, one per column, of the horizontal seam of minimum energy.
func (c *Carver) FindHorizontalSeam() Seam {
	return c.grid.FindHorizontalSeam()
}

// FindSeam returns the seam of minimum energy along the given axis.
func (c *Carver) FindSeam(axis Axis) Seam {
	if axis == Horizontal {
		return c.FindHorizontalSeam()
	}
	return c.FindVerticalSeam()
}

// RemoveVerticalSeam removes the seam from the image, reducing its width by one.
func (c *Carver) RemoveVerticalSeam(seam Seam) error {
	return c.grid.RemoveColumn(seam)
}

// RemoveHorizontalSeam removes the seam from the image, reducing its height by one.
func (c *Carver) RemoveHorizontalSeam(seam Seam) error {
	return c.grid.RemoveRow(seam)
}

// RemoveSeam removes the seam along the given axis.
func (c *Carver) RemoveSeam(axis Axis, seam Seam) error {
	if axis == Horizontal {
		return c.RemoveHorizontalSeam(seam)
	}
	return c.RemoveVerticalSeam(seam)
}

// SeamEnergy returns the summed energy of the pixels crossed by the seam.
// The seam has to cross the current image with adjacent entries.
func (c *Carver) SeamEnergy(axis Axis, seam Seam) (float64, error) {
	g := c.grid
	if axis == Horizontal {
		g = g.Transpose()
	}
	if err := seam.check(g.height, g.width); err != nil {
		return 0, errors.Wrapf(err, "%s seam energy", axis)
	}

	var total float64
	for row, col := range seam {
		total += g.energy(col, row)
	}
	return total, nil
}
