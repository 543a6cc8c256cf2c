package nav

import (
	"fmt"
	"log/slog"
	"math"
)

// Config holds the static navigation parameters of a session.
type Config struct {
	Boundary      float64
	CellSize      float64
	AgentRadius   float64
	TrunkRadius   float64
	FoliageRadius float64

	// AllowCornerCutting permits diagonal steps between two blocked
	// orthogonal neighbors.
	AllowCornerCutting bool
}

// DefaultConfig returns the stock navigation parameters.
func DefaultConfig() Config {
	return Config{
		Boundary:           DefaultBoundary,
		CellSize:           DefaultCellSize,
		AgentRadius:        DefaultAgentRadius,
		TrunkRadius:        DefaultTrunkRadius,
		FoliageRadius:      DefaultFoliageRadius,
		AllowCornerCutting: true,
	}
}

// TreeRadius is the collision radius shared by every tree.
func (c Config) TreeRadius() float64 {
	return math.Max(c.TrunkRadius, c.FoliageRadius)
}

// EffectiveRadius is the blocking radius of a tree as seen by an agent center.
func (c Config) EffectiveRadius() float64 {
	return c.TreeRadius() + c.AgentRadius
}

// Planner resolves paths from arbitrary start points to a single target.
//
// Occupancy and the path cache are derived state: SetObstacles and
// SetTarget rebuild or invalidate them. Planner is not safe for concurrent
// use; the simulation drives it from one goroutine.
type Planner struct {
	cfg       Config
	grid      *Grid
	occupancy *Occupancy
	cache     *PathCache
	radius    func(Obstacle) float64

	obstacles  []Obstacle
	target     Point
	targetCell Cell

	search searchState
}

// NewPlanner creates a planner with an empty obstacle field.
func NewPlanner(cfg Config, target Point) (*Planner, error) {
	grid, err := NewGrid(cfg.Boundary, cfg.CellSize)
	if err != nil {
		return nil, fmt.Errorf("creating navigation grid: %w", err)
	}
	if cfg.AgentRadius < 0 || math.IsNaN(cfg.AgentRadius) {
		return nil, fmt.Errorf("invalid agent radius %v", cfg.AgentRadius)
	}

	p := &Planner{
		cfg:       cfg,
		grid:      grid,
		occupancy: newOccupancy(grid),
		cache:     NewPathCache(),
		radius:    radiusFor(cfg.TreeRadius(), cfg.AgentRadius),
	}
	p.search.init(grid.Size())
	p.target = target
	p.targetCell = grid.WorldToCell(target.X, target.Z)

	return p, nil
}

// Grid returns the spatial grid.
func (p *Planner) Grid() *Grid { return p.grid }

// Occupancy returns the current occupancy map. Read-only for callers.
func (p *Planner) Occupancy() *Occupancy { return p.occupancy }

// IsBlocked reports whether a cell is blocked under the current obstacles.
func (p *Planner) IsBlocked(c Cell) bool { return p.occupancy.IsBlocked(c) }

// Target returns the current target position.
func (p *Planner) Target() Point { return p.target }

// Generation changes whenever cached paths become invalid.
func (p *Planner) Generation() uint64 { return p.cache.Generation() }

// CacheStats returns path cache counters.
func (p *Planner) CacheStats() CacheStats { return p.cache.Stats() }

// SetObstacles replaces the obstacle field with a snapshot of obs,
// rebuilds occupancy and invalidates every cached path.
// Passing the same obstacles as the current field is a no-op.
func (p *Planner) SetObstacles(obs []Obstacle) {
	if sameObstacles(p.obstacles, obs) {
		return
	}

	p.obstacles = snapshotObstacles(obs)
	p.occupancy.rebuild(p.obstacles, p.radius)
	p.cache.Invalidate()

	slog.Debug("navigation occupancy rebuilt",
		"obstacles", len(p.obstacles),
		"blocked", p.occupancy.BlockedCount(),
		"generation", p.cache.Generation())
}

// SetTarget moves the target. Any change invalidates cached paths.
func (p *Planner) SetTarget(x, z float64) {
	t := Point{X: x, Z: z}
	if t == p.target {
		return
	}
	p.target = t
	p.targetCell = p.grid.WorldToCell(x, z)
	p.cache.Invalidate()
}

// GetPath returns waypoints from (startX, startZ) to the target.
//
// The first point is the center of the start cell and the last is the
// center of the target cell. If the target cannot be reached the result is
// the straight line [start, target] in raw coordinates. The result always
// holds at least two points.
func (p *Planner) GetPath(startX, startZ float64) []Point {
	start := p.grid.WorldToCell(startX, startZ)

	if route, ok := p.cache.Get(start); ok {
		if p.endsAtTarget(route.Points) {
			if route.Direct {
				route.Points[0] = Point{X: startX, Z: startZ}
			}
			return route.Points
		}
		p.cache.Remove(start)
	}

	if start == p.targetCell {
		center := p.grid.CellToWorld(start)
		return []Point{center, center}
	}

	var route Route
	if goal, ok := p.astar(start, p.targetCell); ok {
		route.Points = p.reconstruct(goal)
	} else {
		slog.Debug("no path to target, using direct line",
			"start_x", startX, "start_z", startZ,
			"target_x", p.target.X, "target_z", p.target.Z)
		route = Route{
			Points: []Point{{X: startX, Z: startZ}, p.target},
			Direct: true,
		}
	}

	p.cache.Put(start, route)
	return route.Points
}

func (p *Planner) endsAtTarget(path []Point) bool {
	if len(path) < 2 {
		return false
	}
	last := path[len(path)-1]
	return p.grid.WorldToCell(last.X, last.Z) == p.targetCell
}
