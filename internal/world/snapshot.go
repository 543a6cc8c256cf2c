package world

import (
	"github.com/udisondev/lastcamp/internal/game/forest"
	"github.com/udisondev/lastcamp/internal/game/nav"
	"github.com/udisondev/lastcamp/internal/model"
)

// HostileView is an immutable copy of one hostile's state.
type HostileView struct {
	ID        uint32
	Position  model.Location
	Waypoints []nav.Point // not yet reached
}

// Snapshot is an immutable copy of the world, safe to hand to other goroutines.
type Snapshot struct {
	Tick     uint64
	Clock    float64
	Breaches int
	Camp     model.Location
	Hostiles []HostileView

	// ForestVersion identifies the tree layout. Trees is set only on the
	// first snapshot and whenever the layout changed since the previous one.
	ForestVersion uint64
	Trees         []forest.Tree
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          w.tick,
		Clock:         w.Clock(),
		Breaches:      w.breaches,
		Camp:          w.cfg.Camp,
		ForestVersion: w.forest.Version(),
		Hostiles:      make([]HostileView, 0, len(w.hostiles)),
	}

	for _, id := range w.ai.IDs() {
		ctrl, ok := w.hostiles[id]
		if !ok {
			continue
		}
		remaining := ctrl.Agent().Remaining()
		wps := make([]nav.Point, len(remaining))
		copy(wps, remaining)
		s.Hostiles = append(s.Hostiles, HostileView{
			ID:        id,
			Position:  ctrl.Position(),
			Waypoints: wps,
		})
	}

	if s.ForestVersion != w.sentVersion {
		s.Trees = w.forest.Trees()
		w.sentVersion = s.ForestVersion
	}
	return s
}
