package nav

import "github.com/go-gl/mathgl/mgl64"

// PathSource produces paths toward a target. *Planner implements it.
type PathSource interface {
	GetPath(startX, startZ float64) []Point
	Generation() uint64
}

// AgentConfig tunes waypoint following.
type AgentConfig struct {
	ReplanInterval float64
	WaypointReach  float64
}

// DefaultAgentConfig returns the stock follower settings.
func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		ReplanInterval: DefaultReplanInterval,
		WaypointReach:  DefaultWaypointReach,
	}
}

// Agent follows planner waypoints for one mobile unit.
type Agent struct {
	cfg   AgentConfig
	pos   mgl64.Vec2
	speed float64

	path       []Point
	index      int
	lastPlan   float64
	generation uint64
	planned    bool
}

// NewAgent places an agent at pos.
func NewAgent(pos Point, speed float64, cfg AgentConfig) *Agent {
	return &Agent{
		cfg:   cfg,
		pos:   mgl64.Vec2{pos.X, pos.Z},
		speed: speed,
	}
}

// Position returns the agent's current position.
func (a *Agent) Position() Point {
	return Point{X: a.pos[0], Z: a.pos[1]}
}

// Path returns the path being followed. Callers must not modify it.
func (a *Agent) Path() []Point { return a.path }

// WaypointIndex returns the index of the waypoint being approached.
func (a *Agent) WaypointIndex() int { return a.index }

// Remaining returns the waypoints not yet reached.
func (a *Agent) Remaining() []Point {
	if a.index >= len(a.path) {
		return nil
	}
	return a.path[a.index:]
}

// Arrived reports whether the agent is within radius of target.
func (a *Agent) Arrived(target Point, radius float64) bool {
	return a.Position().Dist(target) <= radius
}

// Update advances the agent by dt seconds at simulation time now.
// src may be nil, in which case the agent walks straight at target.
func (a *Agent) Update(src PathSource, target Point, now, dt float64) {
	if src != nil && a.needsPlan(src, now) {
		a.path = src.GetPath(a.pos[0], a.pos[1])
		a.index = 0
		a.lastPlan = now
		a.generation = src.Generation()
		a.planned = true
	}

	if src == nil || len(a.path) < 2 {
		a.moveToward(mgl64.Vec2{target.X, target.Z}, dt)
		return
	}

	for a.index < len(a.path) && a.distTo(a.path[a.index]) < a.cfg.WaypointReach {
		a.index++
	}
	if a.index >= len(a.path) {
		a.moveToward(mgl64.Vec2{target.X, target.Z}, dt)
		return
	}

	wp := a.path[a.index]
	a.moveToward(mgl64.Vec2{wp.X, wp.Z}, dt)
}

func (a *Agent) needsPlan(src PathSource, now float64) bool {
	switch {
	case !a.planned || len(a.path) == 0:
		return true
	case a.index >= len(a.path):
		return true
	case now-a.lastPlan >= a.cfg.ReplanInterval:
		return true
	case src.Generation() != a.generation:
		return true
	}
	return false
}

func (a *Agent) distTo(p Point) float64 {
	return mgl64.Vec2{p.X, p.Z}.Sub(a.pos).Len()
}

// moveToward steps min(speed*dt, distance) along the unit vector to dst.
func (a *Agent) moveToward(dst mgl64.Vec2, dt float64) {
	delta := dst.Sub(a.pos)
	dist := delta.Len()
	if dist == 0 || a.speed <= 0 || dt <= 0 {
		return
	}
	step := a.speed * dt
	if step >= dist {
		a.pos = dst
		return
	}
	a.pos = a.pos.Add(delta.Mul(step / dist))
}
