package seamcarver

import (
	"math"

	"github.com/pkg/errors"
)

// BorderEnergy is the energy assigned to every pixel on the image border.
// It is high enough to discourage border seams without forbidding them.
const BorderEnergy = 1000.0

// EnergyMap holds the energy of every pixel of a grid.
type EnergyMap struct {
	width  int
	height int
	table  []float64
}

// NewEnergyMap allocates an empty energy map of the given size.
func NewEnergyMap(width, height int) *EnergyMap {
	return &EnergyMap{
		width:  width,
		height: height,
		table:  make([]float64, width*height),
	}
}

// Dimensions returns the size of the energy map.
func (m *EnergyMap) Dimensions() (width, height int) {
	return m.width, m.height
}

// Get returns the energy value at (x, y).
func (m *EnergyMap) Get(x, y int) float64 {
	return m.table[x+y*m.width]
}

func (m *EnergyMap) set(x, y int, e float64) {
	m.table[x+y*m.width] = e
}

// Max returns the highest energy value of the map.
func (m *EnergyMap) Max() float64 {
	var maxEnergy float64
	for _, e := range m.table {
		if e > maxEnergy {
			maxEnergy = e
		}
	}
	return maxEnergy
}

// Energy returns the dual-gradient energy of the pixel at (col, row).
func (g *Grid) Energy(col, row int) (float64, error) {
	if !g.inBounds(col, row) {
		return 0, errors.Wrapf(ErrOutOfRange, "pixel (%d, %d) outside %dx%d", col, row, g.width, g.height)
	}
	return g.energy(col, row), nil
}

// energy computes the pixel energy without bounds checking.
// Border pixels get BorderEnergy, interior pixels the square root of the
// summed squared color gradients along the x and y axis.
func (g *Grid) energy(col, row int) float64 {
	if col == 0 || row == 0 || col >= g.width-1 || row >= g.height-1 {
		return BorderEnergy
	}
	dx2 := delta2(g.at(col+1, row), g.at(col-1, row))
	dy2 := delta2(g.at(col, row-1), g.at(col, row+1))

	return math.Sqrt(dx2 + dy2)
}

// EnergyMap computes the energy of every pixel of the grid.
func (g *Grid) EnergyMap() *EnergyMap {
	m := NewEnergyMap(g.width, g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			m.set(x, y, g.energy(x, y))
		}
	}
	return m
}

// delta2 returns the squared euclidean distance between two colors in RGB space.
func delta2(c1, c2 Color) float64 {
	r := float64(c2.R) - float64(c1.R)
	g := float64(c2.G) - float64(c1.G)
	b := float64(c2.B) - float64(c1.B)

	return r*r + g*g + b*b
}
