package nav

import (
	"math"
	"math/bits"
)

// Occupancy marks which grid cells are blocked by obstacles.
// A cell is blocked iff its center is strictly closer than the effective
// radius to at least one obstacle.
type Occupancy struct {
	grid    *Grid
	blocked []uint64
	count   int
}

func newOccupancy(g *Grid) *Occupancy {
	return &Occupancy{
		grid:    g,
		blocked: make([]uint64, (g.Size()+63)/64),
	}
}

// IsBlocked reports whether c is blocked. Cells outside the grid are blocked.
func (o *Occupancy) IsBlocked(c Cell) bool {
	if !o.grid.Contains(c) {
		return true
	}
	return o.isBlockedIndex(o.grid.index(c))
}

// BlockedCount returns the number of blocked cells.
func (o *Occupancy) BlockedCount() int {
	return o.count
}

func (o *Occupancy) isBlockedIndex(i int) bool {
	return o.blocked[i>>6]&(1<<(uint(i)&63)) != 0
}

func (o *Occupancy) set(i int) {
	o.blocked[i>>6] |= 1 << (uint(i) & 63)
}

// rebuild recomputes the whole map from obstacles.
// Only cells inside each obstacle's bounding square are tested; any cell
// outside it is farther than the radius, so the result matches a full scan.
func (o *Occupancy) rebuild(obstacles []Obstacle, radius func(Obstacle) float64) {
	clear(o.blocked)

	g := o.grid
	for _, ob := range obstacles {
		r := radius(ob)
		if !(r > 0) {
			continue
		}
		r2 := r * r

		minC := g.WorldToCell(ob.X-r, ob.Z-r)
		maxC := g.WorldToCell(ob.X+r, ob.Z+r)
		for cz := minC.Z; cz <= maxC.Z; cz++ {
			for cx := minC.X; cx <= maxC.X; cx++ {
				c := Cell{X: cx, Z: cz}
				center := g.CellToWorld(c)
				dx := center.X - ob.X
				dz := center.Z - ob.Z
				if dx*dx+dz*dz < r2 {
					o.set(g.index(c))
				}
			}
		}
	}

	count := 0
	for _, w := range o.blocked {
		count += bits.OnesCount64(w)
	}
	o.count = count
}

// radiusFor returns the effective blocking radius of an obstacle.
func radiusFor(treeRadius, agentRadius float64) func(Obstacle) float64 {
	return func(ob Obstacle) float64 {
		r := ob.Radius
		if r <= 0 || math.IsNaN(r) {
			r = treeRadius
		}
		return r + agentRadius
	}
}
