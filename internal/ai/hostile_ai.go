package ai

import (
	"log/slog"

	"github.com/udisondev/lastcamp/internal/game/nav"
	"github.com/udisondev/lastcamp/internal/model"
)

// HostileAI marches a hostile on the camp along planner waypoints.
type HostileAI struct {
	hostile    *model.Hostile
	agent      *nav.Agent
	planner    nav.PathSource
	camp       model.Location
	campRadius float64
}

// NewHostileAI creates a controller for hostile standing at pos.
// planner may be nil; the hostile then walks straight at the camp.
func NewHostileAI(
	hostile *model.Hostile,
	pos model.Location,
	planner nav.PathSource,
	camp model.Location,
	campRadius float64,
	cfg nav.AgentConfig,
) *HostileAI {
	return &HostileAI{
		hostile:    hostile,
		agent:      nav.NewAgent(nav.Point{X: pos.X, Z: pos.Z}, hostile.Speed(), cfg),
		planner:    planner,
		camp:       camp,
		campRadius: campRadius,
	}
}

// Hostile returns the controlled hostile.
func (a *HostileAI) Hostile() *model.Hostile { return a.hostile }

// Agent returns the navigation agent.
func (a *HostileAI) Agent() *nav.Agent { return a.agent }

// Position returns the hostile's current position.
func (a *HostileAI) Position() model.Location {
	p := a.agent.Position()
	return model.NewLocation(p.X, p.Z)
}

// Done reports whether the hostile has stopped advancing.
func (a *HostileAI) Done() bool {
	return a.hostile.State() != model.HostileAdvancing
}

// Tick moves the hostile and marks it breached once inside the camp radius.
func (a *HostileAI) Tick(now, dt float64) {
	if a.Done() {
		return
	}

	target := nav.Point{X: a.camp.X, Z: a.camp.Z}
	a.agent.Update(a.planner, target, now, dt)

	if a.agent.Arrived(target, a.campRadius) {
		a.hostile.SetState(model.HostileBreached)
		slog.Info("hostile reached camp",
			"objectID", a.hostile.ObjectID(),
			"elapsed", now-a.hostile.SpawnedAt())
		return
	}

	if IsDebugEnabled() {
		pos := a.agent.Position()
		slog.Debug("hostile moved",
			"objectID", a.hostile.ObjectID(),
			"x", pos.X,
			"z", pos.Z,
			"waypoint", a.agent.WaypointIndex(),
			"path_len", len(a.agent.Path()))
	}
}
