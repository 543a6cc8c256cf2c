package model

import "math"

// Location is a position on the ground plane.
// Value type, passed by value.
type Location struct {
	X float64
	Z float64
}

// NewLocation creates a Location.
func NewLocation(x, z float64) Location {
	return Location{X: x, Z: z}
}

// DistanceSquared returns the squared distance to other.
func (l Location) DistanceSquared(other Location) float64 {
	dx := l.X - other.X
	dz := l.Z - other.Z
	return dx*dx + dz*dz
}

// Distance returns the distance to other.
func (l Location) Distance(other Location) float64 {
	return math.Sqrt(l.DistanceSquared(other))
}

// WithinRange reports whether other is at most r away.
func (l Location) WithinRange(other Location, r float64) bool {
	return l.DistanceSquared(other) <= r*r
}
