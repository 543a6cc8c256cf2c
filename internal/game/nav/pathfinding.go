package nav

import (
	"container/heap"
	"math"
)

// searchState holds A* scratch buffers reused between searches.
// A cell's g and parent are valid only when its seen stamp equals stamp,
// so starting a search costs one increment instead of clearing the buffers.
type searchState struct {
	g      []float64
	parent []int32
	seen   []uint32
	closed []uint32
	stamp  uint32
	open   nodeHeap
}

func (s *searchState) init(size int) {
	s.g = make([]float64, size)
	s.parent = make([]int32, size)
	s.seen = make([]uint32, size)
	s.closed = make([]uint32, size)
	s.open = make(nodeHeap, 0, 256)
}

func (s *searchState) begin() {
	s.stamp++
	if s.stamp == 0 {
		// wrapped: old stamps would alias the new one
		clear(s.seen)
		clear(s.closed)
		s.stamp = 1
	}
	s.open = s.open[:0]
}

// astar searches from start to goal over unblocked cells with 8-neighbor
// moves. It returns the goal index when the goal was reached.
func (p *Planner) astar(start, goal Cell) (int, bool) {
	s := &p.search
	s.begin()

	g := p.grid
	occ := p.occupancy
	startIdx := g.index(start)
	goalIdx := g.index(goal)

	s.g[startIdx] = 0
	s.parent[startIdx] = -1
	s.seen[startIdx] = s.stamp
	heap.Push(&s.open, searchNode{idx: int32(startIdx), g: 0, f: heuristic(start, goal)})

	for s.open.Len() > 0 {
		n := heap.Pop(&s.open).(searchNode)
		idx := int(n.idx)

		if s.closed[idx] == s.stamp || n.g > s.g[idx] {
			continue // superseded entry
		}
		if idx == goalIdx {
			return idx, true
		}
		s.closed[idx] = s.stamp

		cur := g.cellAt(idx)
		var open [4]bool
		for k, d := range neighbors {
			next := Cell{X: cur.X + d.dx, Z: cur.Z + d.dz}
			if !g.Contains(next) {
				continue
			}
			ni := g.index(next)
			if occ.isBlockedIndex(ni) {
				continue
			}
			if k < 4 {
				open[k] = true
			} else if !p.cfg.AllowCornerCutting && (!open[d.adj1] || !open[d.adj2]) {
				continue
			}
			if s.closed[ni] == s.stamp {
				continue
			}

			ng := n.g + d.weight
			if s.seen[ni] == s.stamp && ng >= s.g[ni] {
				continue
			}
			s.g[ni] = ng
			s.parent[ni] = int32(idx)
			s.seen[ni] = s.stamp
			heap.Push(&s.open, searchNode{idx: int32(ni), g: ng, f: ng + heuristic(next, goal)})
		}
	}

	return 0, false
}

// reconstruct walks parent links back from goal and returns cell centers
// ordered start to goal.
func (p *Planner) reconstruct(goal int) []Point {
	s := &p.search

	steps := 0
	for i := int32(goal); i != -1; i = s.parent[i] {
		steps++
	}

	path := make([]Point, steps)
	k := steps - 1
	for i := int32(goal); i != -1; i = s.parent[i] {
		path[k] = p.grid.CellToWorld(p.grid.cellAt(int(i)))
		k--
	}
	return path
}

// heuristic is the Euclidean distance in cell units.
func heuristic(a, b Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Z-b.Z))
}

type searchNode struct {
	idx int32
	g   float64
	f   float64
}

// nodeHeap is a min-heap by f. Equal f prefers the deeper node.
type nodeHeap []searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].g > h[j].g
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(searchNode)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[:n-1]
	return node
}
