package world

import "sync/atomic"

// hostileIDBase is the first object ID handed to hostiles.
// IDs below it stay free for future entity kinds.
const hostileIDBase = 0x20000000

// ObjectIDGenerator hands out unique object IDs for world entities.
type ObjectIDGenerator struct {
	nextHostileID atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextHostileID.Store(hostileIDBase)
	return gen
}

// NextHostileID generates the next hostile object ID.
func (g *ObjectIDGenerator) NextHostileID() uint32 {
	return g.nextHostileID.Add(1)
}
