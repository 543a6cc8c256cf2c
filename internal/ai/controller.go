package ai

import "github.com/udisondev/lastcamp/internal/model"

// Controller drives one hostile each simulation tick.
type Controller interface {
	// Tick advances the controller by dt seconds at simulation time now.
	Tick(now, dt float64)

	// Done reports that the controller has nothing left to do and can be
	// unregistered.
	Done() bool

	// Position returns the controlled unit's position.
	Position() model.Location
}
