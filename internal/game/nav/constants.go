package nav

import "math"

// Default navigation knobs. All distances are world units, intervals are seconds.
const (
	DefaultBoundary       = 50.0
	DefaultCellSize       = 1.0
	DefaultAgentRadius    = 0.4
	DefaultTrunkRadius    = 0.35
	DefaultFoliageRadius  = 0.9
	DefaultReplanInterval = 1.0
	DefaultWaypointReach  = 0.5
)

// A* step weights.
const (
	WeightStraight = 1.0
	WeightDiagonal = math.Sqrt2
)

// neighbor offsets: 4 orthogonal first, then 4 diagonal.
// Diagonal entries name the two orthogonal indices they pass between.
var neighbors = [8]struct {
	dx, dz     int
	weight     float64
	adj1, adj2 int
}{
	{0, -1, WeightStraight, -1, -1},
	{1, 0, WeightStraight, -1, -1},
	{0, 1, WeightStraight, -1, -1},
	{-1, 0, WeightStraight, -1, -1},
	{1, -1, WeightDiagonal, 0, 1},
	{1, 1, WeightDiagonal, 1, 2},
	{-1, 1, WeightDiagonal, 2, 3},
	{-1, -1, WeightDiagonal, 3, 0},
}
