package seamcarver

import "math"

// FindVerticalSeam returns the vertical seam of minimum total energy.
//
// The energy map is treated as a directed acyclic graph where every pixel
// links to its (at most three) neighbors on the next row. Since every edge
// points one row down, visiting the rows top to bottom is already a
// topological order, so the shortest path is found by relaxing the edges of
// each row in turn:
//   - the distance to every pixel of the first row is zero;
//   - for each pixel the distance to a neighbor below is updated when the
//     path through the pixel is strictly cheaper, recording the pixel as predecessor;
//   - the cheapest pixel of the last row (leftmost on ties) is the seam end,
//     and the seam is walked back up through the recorded predecessors.
func (g *Grid) FindVerticalSeam() Seam {
	return shortestPath(g.EnergyMap())
}

// FindHorizontalSeam returns the horizontal seam of minimum total energy.
// It runs the vertical search on the transposed grid.
func (g *Grid) FindHorizontalSeam() Seam {
	return g.Transpose().FindVerticalSeam()
}

// shortestPath finds the top to bottom path of lowest cumulative energy.
func shortestPath(m *EnergyMap) Seam {
	width, height := m.width, m.height

	distTo := make([]float64, width*height)
	edgeTo := make([]int, width*height)
	for i := width; i < len(distTo); i++ {
		distTo[i] = math.Inf(1)
		edgeTo[i] = -1
	}

	relax := func(x, y, nx int) {
		from, to := x+y*width, nx+(y+1)*width
		if d := distTo[from] + m.Get(nx, y+1); d < distTo[to] {
			distTo[to] = d
			edgeTo[to] = x
		}
	}

	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			// Clip the neighbors to the valid columns.
			if x > 0 {
				relax(x, y, x-1)
			}
			relax(x, y, x)
			if x < width-1 {
				relax(x, y, x+1)
			}
		}
	}

	// Find the cheapest end point on the last row.
	var (
		last    = (height - 1) * width
		minDist = math.Inf(1)
		px      int
	)
	for x := 0; x < width; x++ {
		if distTo[last+x] < minDist {
			minDist = distTo[last+x]
			px = x
		}
	}

	seam := make(Seam, height)
	for y := height - 1; y >= 0; y-- {
		seam[y] = px
		px = edgeTo[px+y*width]
	}
	return seam
}
