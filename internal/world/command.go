package world

import "log/slog"

// Command mutates the world. Commands are queued from any goroutine and
// applied on the simulation goroutine at the start of the next step.
type Command interface {
	apply(w *World)
}

// CutTree fells a tree. Unknown or already cut trees are ignored.
type CutTree struct {
	TreeID int64
}

func (c CutTree) apply(w *World) {
	if !w.forest.Cut(c.TreeID) {
		slog.Debug("cut ignored, tree not standing", "treeID", c.TreeID)
		return
	}
	slog.Info("tree cut", "treeID", c.TreeID, "remaining", w.forest.Len())

	select {
	case w.cutEvents <- c.TreeID:
	default:
		slog.Warn("cut event dropped, persister backlog full", "treeID", c.TreeID)
	}
}

// SpawnHostile places a hostile at (X, Z), clamped to the world.
type SpawnHostile struct {
	X, Z float64
}

func (c SpawnHostile) apply(w *World) {
	w.Spawn(c.X, c.Z)
}
