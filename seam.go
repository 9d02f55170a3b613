package seamcarver

import (
	"image"

	"github.com/esimov/seamcarver/utils"
	"github.com/pkg/errors"
)

// Axis selects the orientation of a seam.
type Axis int

const (
	// Vertical seams run top to bottom and hold one column index per row.
	Vertical Axis = iota
	// Horizontal seams run left to right and hold one row index per column.
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "unknown"
}

// Seam is a connected path of pixels crossing the image. Entry i is the
// column of row i for a vertical seam, or the row of column i for a horizontal one.
type Seam []int

// Points converts the seam to image coordinates.
func (s Seam) Points(axis Axis) []image.Point {
	points := make([]image.Point, len(s))
	for i, v := range s {
		if axis == Horizontal {
			points[i] = image.Pt(i, v)
		} else {
			points[i] = image.Pt(v, i)
		}
	}
	return points
}

// validate checks that the seam can be removed from a grid where the seam
// crosses length lines and every entry indexes into a dimension of size bound.
func (s Seam) validate(length, bound int) error {
	if err := s.check(length, bound); err != nil {
		return err
	}
	if bound <= 1 {
		return errors.Wrapf(ErrInvalidSeam, "cannot shrink a dimension of size %d", bound)
	}
	return nil
}

// check verifies the shape of the seam: its length, the range of its entries
// and the adjacency of consecutive entries.
func (s Seam) check(length, bound int) error {
	if len(s) == 0 {
		return errors.Wrap(ErrInvalidSeam, "empty seam")
	}
	if len(s) != length {
		return errors.Wrapf(ErrInvalidSeam, "seam length %d, expected %d", len(s), length)
	}
	for i, v := range s {
		if v < 0 || v >= bound {
			return errors.Wrapf(ErrInvalidSeam, "entry %d at index %d outside [0, %d)", v, i, bound)
		}
		if i > 0 && utils.Abs(v-s[i-1]) > 1 {
			return errors.Wrapf(ErrInvalidSeam, "entries %d and %d at index %d are not adjacent", s[i-1], v, i)
		}
	}
	return nil
}
