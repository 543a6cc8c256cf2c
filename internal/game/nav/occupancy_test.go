package nav

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyMatchesFullScan(t *testing.T) {
	g, err := NewGrid(10, 0.75)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	obstacles := make([]Obstacle, 25)
	for i := range obstacles {
		obstacles[i] = Obstacle{
			X:      rng.Float64()*24 - 12, // some outside the world
			Z:      rng.Float64()*24 - 12,
			Radius: 0.3 + rng.Float64(),
		}
	}
	radius := radiusFor(1.0, 0.4)

	occ := newOccupancy(g)
	occ.rebuild(obstacles, radius)

	blocked := 0
	for cz := range g.Height() {
		for cx := range g.Width() {
			c := Cell{cx, cz}
			center := g.CellToWorld(c)
			want := false
			for _, ob := range obstacles {
				if center.Dist(Point{ob.X, ob.Z}) < radius(ob) {
					want = true
					break
				}
			}
			if want {
				blocked++
			}
			assert.Equal(t, want, occ.IsBlocked(c), "cell %v", c)
		}
	}
	assert.Equal(t, blocked, occ.BlockedCount())
}

func TestOccupancyStrictRadius(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)

	occ := newOccupancy(g)
	// center of cell (5,5) is (0.5, 0.5); obstacle at (1.5, 0.5) is exactly 1.0 away
	occ.rebuild([]Obstacle{{X: 1.5, Z: 0.5, Radius: 1}}, radiusFor(0, 0))

	assert.False(t, occ.IsBlocked(Cell{5, 5}), "distance equal to radius must stay open")
	assert.True(t, occ.IsBlocked(Cell{6, 5}))
}

func TestOccupancyZeroRadiusUsesTreeRadius(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)

	occ := newOccupancy(g)
	occ.rebuild([]Obstacle{{X: 0.5, Z: 0.5}}, radiusFor(0.9, 0.4))

	assert.True(t, occ.IsBlocked(Cell{6, 5}), "1.0 away, radius 1.3")
	assert.False(t, occ.IsBlocked(Cell{7, 5}), "2.0 away")
}

func TestOccupancyRebuildClearsOldCells(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)

	occ := newOccupancy(g)
	occ.rebuild([]Obstacle{{X: -3, Z: -3, Radius: 1}}, radiusFor(0, 0))
	require.Positive(t, occ.BlockedCount())

	occ.rebuild(nil, radiusFor(0, 0))
	assert.Equal(t, 0, occ.BlockedCount())
	assert.False(t, occ.IsBlocked(g.WorldToCell(-3, -3)))
}

func TestOccupancyOutsideGridIsBlocked(t *testing.T) {
	g, err := NewGrid(5, 1)
	require.NoError(t, err)

	occ := newOccupancy(g)
	assert.True(t, occ.IsBlocked(Cell{-1, 0}))
	assert.True(t, occ.IsBlocked(Cell{0, 10}))
}
