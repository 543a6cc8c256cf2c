package nav

import (
	"fmt"
	"math"
)

// Point is a position on the ground plane in world coordinates.
type Point struct {
	X, Z float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Z-o.Z)
}

// Cell is a grid index, always inside [0, width) x [0, height).
type Cell struct {
	X, Z int
}

// Grid maps continuous world coordinates onto square cells.
// The world is the square [-boundary, boundary] on both axes.
type Grid struct {
	boundary float64
	cellSize float64
	width    int
	height   int
}

// MaxGridSide bounds cells per side so every cell index fits in an int32.
const MaxGridSide = 46340 // floor(sqrt(MaxInt32))

// GridSide returns the number of cells per side for the given world, as a
// float so oversized worlds can be rejected before any allocation.
func GridSide(boundary, cellSize float64) float64 {
	return math.Ceil(2 * boundary / cellSize)
}

// NewGrid creates a grid covering the square of side 2*boundary.
func NewGrid(boundary, cellSize float64) (*Grid, error) {
	if !(boundary > 0) || math.IsInf(boundary, 0) {
		return nil, fmt.Errorf("invalid boundary %v", boundary)
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("invalid cell size %v", cellSize)
	}

	side := GridSide(boundary, cellSize)
	if !(side <= MaxGridSide) {
		return nil, fmt.Errorf("grid too large: %v cells per side, limit %d", side, MaxGridSide)
	}
	dim := max(int(side), 1)
	return &Grid{
		boundary: boundary,
		cellSize: cellSize,
		width:    dim,
		height:   dim,
	}, nil
}

// Width returns the number of cells along X.
func (g *Grid) Width() int { return g.width }

// Height returns the number of cells along Z.
func (g *Grid) Height() int { return g.height }

// CellSize returns the side of one cell in world units.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Boundary returns the half-side of the world square.
func (g *Grid) Boundary() float64 { return g.boundary }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Z >= 0 && c.Z < g.height
}

// WorldToCell converts world coordinates to a cell.
// Coordinates outside the world are clamped to the nearest edge cell.
func (g *Grid) WorldToCell(x, z float64) Cell {
	return Cell{
		X: g.axisCell(x, g.width),
		Z: g.axisCell(z, g.height),
	}
}

// CellToWorld returns the world position of the cell center.
func (g *Grid) CellToWorld(c Cell) Point {
	return Point{
		X: float64(c.X)*g.cellSize - g.boundary + g.cellSize/2,
		Z: float64(c.Z)*g.cellSize - g.boundary + g.cellSize/2,
	}
}

// Size returns the total cell count.
func (g *Grid) Size() int { return g.width * g.height }

func (g *Grid) axisCell(v float64, dim int) int {
	if math.IsNaN(v) {
		return 0
	}
	f := math.Floor((v + g.boundary) / g.cellSize)
	if f < 0 {
		return 0
	}
	if f > float64(dim-1) {
		return dim - 1
	}
	return int(f)
}

// index flattens a cell into a row-major offset.
func (g *Grid) index(c Cell) int {
	return c.Z*g.width + c.X
}

// cellAt is the inverse of index.
func (g *Grid) cellAt(i int) Cell {
	return Cell{X: i % g.width, Z: i / g.width}
}
