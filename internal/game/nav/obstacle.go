package nav

import "slices"

// Obstacle is a circular blocker on the ground plane, one per standing tree.
// Radius is the tree's own collision radius; zero selects the configured
// tree radius. The agent radius is added on top when building occupancy.
type Obstacle struct {
	X, Z   float64
	Radius float64
}

// snapshotObstacles copies the caller's list so later mutations of the
// caller's slice never leak into the planner.
func snapshotObstacles(obs []Obstacle) []Obstacle {
	if len(obs) == 0 {
		return nil
	}
	return slices.Clone(obs)
}

func sameObstacles(a, b []Obstacle) bool {
	return slices.Equal(a, b)
}
