package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationDistance(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Location
		wantSq float64
		want   float64
	}{
		{"same point", NewLocation(1, 1), NewLocation(1, 1), 0, 0},
		{"3-4-5", NewLocation(0, 0), NewLocation(3, 4), 25, 5},
		{"negative coords", NewLocation(-1, -2), NewLocation(2, 2), 25, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantSq, tt.a.DistanceSquared(tt.b), 1e-12)
			assert.InDelta(t, tt.want, tt.a.Distance(tt.b), 1e-12)
		})
	}
}

func TestLocationWithinRange(t *testing.T) {
	a := NewLocation(0, 0)
	assert.True(t, a.WithinRange(NewLocation(3, 4), 5))
	assert.False(t, a.WithinRange(NewLocation(3, 4), 4.99))
}

func TestHostileState(t *testing.T) {
	h := NewHostile(10, 2.5, 3)
	assert.Equal(t, uint32(10), h.ObjectID())
	assert.Equal(t, HostileAdvancing, h.State())
	assert.Equal(t, "ADVANCING", h.State().String())

	h.SetState(HostileBreached)
	assert.Equal(t, "BREACHED", h.State().String())
	assert.Equal(t, "UNKNOWN", HostileState(42).String())
}
