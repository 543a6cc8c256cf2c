// Package forest tracks the standing trees that block hostile movement.
package forest

import (
	"cmp"
	"slices"

	"github.com/udisondev/lastcamp/internal/game/nav"
)

// Tree is one standing tree. Radius is its collision radius.
type Tree struct {
	ID     int64
	X, Z   float64
	Radius float64
}

// Forest is the set of live trees. A tree leaves the set the moment it is cut.
// Not safe for concurrent use.
type Forest struct {
	trees   map[int64]Tree
	version uint64
}

// New creates a forest holding trees.
func New(trees []Tree) *Forest {
	f := &Forest{trees: make(map[int64]Tree, len(trees))}
	for _, t := range trees {
		f.trees[t.ID] = t
	}
	f.version = 1
	return f
}

// Version changes on every mutation.
func (f *Forest) Version() uint64 { return f.version }

// Len returns the number of live trees.
func (f *Forest) Len() int { return len(f.trees) }

// Get returns the tree with the given ID.
func (f *Forest) Get(id int64) (Tree, bool) {
	t, ok := f.trees[id]
	return t, ok
}

// Add plants t, replacing any tree with the same ID.
func (f *Forest) Add(t Tree) {
	f.trees[t.ID] = t
	f.version++
}

// Cut removes the tree. Returns false if no such tree is standing.
func (f *Forest) Cut(id int64) bool {
	if _, ok := f.trees[id]; !ok {
		return false
	}
	delete(f.trees, id)
	f.version++
	return true
}

// Trees returns live trees ordered by ID.
func (f *Forest) Trees() []Tree {
	out := make([]Tree, 0, len(f.trees))
	for _, t := range f.trees {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Tree) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Obstacles returns a fresh obstacle list for the navigation planner,
// ordered by tree ID so equal forests give equal lists.
func (f *Forest) Obstacles() []nav.Obstacle {
	trees := f.Trees()
	obs := make([]nav.Obstacle, len(trees))
	for i, t := range trees {
		obs[i] = nav.Obstacle{X: t.X, Z: t.Z, Radius: t.Radius}
	}
	return obs
}
