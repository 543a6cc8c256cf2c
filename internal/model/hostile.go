package model

// HostileState is the lifecycle stage of a hostile.
type HostileState int32

const (
	HostileAdvancing HostileState = iota
	HostileBreached               // reached the camp
	HostileRemoved
)

// String returns the state name.
func (s HostileState) String() string {
	switch s {
	case HostileAdvancing:
		return "ADVANCING"
	case HostileBreached:
		return "BREACHED"
	case HostileRemoved:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// Hostile is a unit marching on the camp.
// Its position is owned by the navigation agent driving it.
type Hostile struct {
	objectID  uint32
	speed     float64
	spawnedAt float64
	state     HostileState
}

// NewHostile creates an advancing hostile.
func NewHostile(objectID uint32, speed, spawnedAt float64) *Hostile {
	return &Hostile{
		objectID:  objectID,
		speed:     speed,
		spawnedAt: spawnedAt,
		state:     HostileAdvancing,
	}
}

// ObjectID returns the unique object ID.
func (h *Hostile) ObjectID() uint32 { return h.objectID }

// Speed returns movement speed in world units per second.
func (h *Hostile) Speed() float64 { return h.speed }

// SpawnedAt returns the simulation time of spawn.
func (h *Hostile) SpawnedAt() float64 { return h.spawnedAt }

// State returns the lifecycle state.
func (h *Hostile) State() HostileState { return h.state }

// SetState changes the lifecycle state.
func (h *Hostile) SetState(s HostileState) { h.state = s }
