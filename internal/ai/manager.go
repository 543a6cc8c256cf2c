package ai

import (
	"fmt"
	"log/slog"
	"slices"
)

// TickManager owns the controllers of all live hostiles and ticks them in
// ascending object ID order. It runs on the simulation goroutine only.
type TickManager struct {
	controllers map[uint32]Controller
	order       []uint32 // sorted IDs, rebuilt lazily
	dirty       bool
}

// NewTickManager creates an empty tick manager.
func NewTickManager() *TickManager {
	return &TickManager{
		controllers: make(map[uint32]Controller),
	}
}

// Register adds a controller under objectID, replacing any previous one.
func (m *TickManager) Register(objectID uint32, controller Controller) {
	m.controllers[objectID] = controller
	m.dirty = true

	if IsDebugEnabled() {
		slog.Debug("AI controller registered", "objectID", objectID)
	}
}

// Unregister removes the controller for objectID.
func (m *TickManager) Unregister(objectID uint32) {
	if _, ok := m.controllers[objectID]; !ok {
		return
	}
	delete(m.controllers, objectID)
	m.dirty = true

	if IsDebugEnabled() {
		slog.Debug("AI controller unregistered", "objectID", objectID)
	}
}

// TickAll ticks every controller and returns the IDs of controllers that
// reported Done afterwards. Finished controllers stay registered; the
// caller decides what to do with them.
func (m *TickManager) TickAll(now, dt float64) []uint32 {
	var finished []uint32
	for _, id := range m.IDs() {
		c := m.controllers[id]
		c.Tick(now, dt)
		if c.Done() {
			finished = append(finished, id)
		}
	}
	return finished
}

// IDs returns registered object IDs in ascending order.
// The slice is shared; callers must not modify it.
func (m *TickManager) IDs() []uint32 {
	if m.dirty {
		m.order = m.order[:0]
		for id := range m.controllers {
			m.order = append(m.order, id)
		}
		slices.Sort(m.order)
		m.dirty = false
	}
	return m.order
}

// Count returns number of registered controllers.
func (m *TickManager) Count() int {
	return len(m.controllers)
}

// GetController returns the controller for objectID.
func (m *TickManager) GetController(objectID uint32) (Controller, error) {
	c, ok := m.controllers[objectID]
	if !ok {
		return nil, fmt.Errorf("controller not found for objectID %d", objectID)
	}
	return c, nil
}
