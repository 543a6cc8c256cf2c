package nav

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		name     string
		boundary float64
		cellSize float64
		wantDim  int
	}{
		{"exact fit", 5, 1, 10},
		{"fractional cells round up", 10, 0.75, 27},
		{"cell larger than world", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.boundary, tt.cellSize)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDim, g.Width())
			assert.Equal(t, tt.wantDim, g.Height())
		})
	}
}

func TestNewGridRejectsBadInput(t *testing.T) {
	for _, tc := range []struct{ boundary, cellSize float64 }{
		{0, 1},
		{-5, 1},
		{5, 0},
		{5, -1},
		{math.NaN(), 1},
		{5, math.Inf(1)},
		{1e12, 1},
		{50, 1e-9},
		{50, 1e-320},
	} {
		_, err := NewGrid(tc.boundary, tc.cellSize)
		assert.Error(t, err, "boundary=%v cellSize=%v", tc.boundary, tc.cellSize)
	}
}

func TestNewGridSideLimit(t *testing.T) {
	g, err := NewGrid(MaxGridSide/2, 1)
	require.NoError(t, err)
	assert.Equal(t, MaxGridSide, g.Width())

	_, err = NewGrid(MaxGridSide/2+1, 1)
	assert.Error(t, err)
}

func TestWorldToCell(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, z float64
		want Cell
	}{
		{"min corner", -5, -5, Cell{0, 0}},
		{"origin", 0, 0, Cell{5, 5}},
		{"just below origin", -0.01, -0.01, Cell{4, 4}},
		{"max corner clamps", 5, 5, Cell{9, 9}},
		{"far negative clamps", -1000, 3, Cell{0, 8}},
		{"far positive clamps", 1e9, -1e9, Cell{9, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.WorldToCell(tt.x, tt.z))
		})
	}
}

func TestCellToWorldIsCenter(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)

	assert.Equal(t, Point{X: -4.5, Z: -4.5}, g.CellToWorld(Cell{0, 0}))
	assert.Equal(t, Point{X: 4.5, Z: 0.5}, g.CellToWorld(Cell{9, 5}))
}

func TestWorldCellRoundTripWithinHalfDiagonal(t *testing.T) {
	g, err := NewGrid(10, 0.75)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	limit := g.CellSize() * math.Sqrt2 / 2
	for range 2000 {
		x := rng.Float64()*20 - 10
		z := rng.Float64()*20 - 10
		p := g.CellToWorld(g.WorldToCell(x, z))
		assert.LessOrEqual(t, p.Dist(Point{X: x, Z: z}), limit+1e-9, "x=%v z=%v", x, z)
	}
}

func TestWorldToCellNeverOutOfRange(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)

	for _, v := range []float64{-1e12, -6, 5.0001, 1e12, math.Inf(1), math.Inf(-1), math.NaN()} {
		c := g.WorldToCell(v, -v)
		assert.True(t, g.Contains(c), "value %v produced %v", v, c)
	}
}
