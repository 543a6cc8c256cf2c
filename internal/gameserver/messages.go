package gameserver

import (
	"github.com/udisondev/lastcamp/internal/game/forest"
	"github.com/udisondev/lastcamp/internal/world"
)

// Server → client message types.
const (
	MsgState  = "state"
	MsgForest = "forest"
)

// Client → server message types.
const (
	MsgCut   = "cut"
	MsgSpawn = "spawn"
)

type pointMessage struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

type hostileMessage struct {
	ID   uint32         `json:"id"`
	X    float64        `json:"x"`
	Z    float64        `json:"z"`
	Path []pointMessage `json:"path,omitempty"`
}

type stateMessage struct {
	Type          string           `json:"type"`
	Tick          uint64           `json:"tick"`
	Clock         float64          `json:"clock"`
	Breaches      int              `json:"breaches"`
	Camp          pointMessage     `json:"camp"`
	ForestVersion uint64           `json:"forestVersion"`
	Hostiles      []hostileMessage `json:"hostiles"`
}

type treeMessage struct {
	ID     int64   `json:"id"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
}

type forestMessage struct {
	Type    string        `json:"type"`
	Version uint64        `json:"version"`
	Trees   []treeMessage `json:"trees"`
}

// clientMessage is any message a browser sends.
type clientMessage struct {
	Type   string  `json:"type"`
	TreeID int64   `json:"treeId,omitempty"`
	X      float64 `json:"x,omitempty"`
	Z      float64 `json:"z,omitempty"`
}

func newStateMessage(s world.Snapshot) stateMessage {
	msg := stateMessage{
		Type:          MsgState,
		Tick:          s.Tick,
		Clock:         s.Clock,
		Breaches:      s.Breaches,
		Camp:          pointMessage{X: s.Camp.X, Z: s.Camp.Z},
		ForestVersion: s.ForestVersion,
		Hostiles:      make([]hostileMessage, len(s.Hostiles)),
	}
	for i, h := range s.Hostiles {
		hm := hostileMessage{ID: h.ID, X: h.Position.X, Z: h.Position.Z}
		if len(h.Waypoints) > 0 {
			hm.Path = make([]pointMessage, len(h.Waypoints))
			for j, wp := range h.Waypoints {
				hm.Path[j] = pointMessage{X: wp.X, Z: wp.Z}
			}
		}
		msg.Hostiles[i] = hm
	}
	return msg
}

func newForestMessage(version uint64, trees []forest.Tree) forestMessage {
	msg := forestMessage{
		Type:    MsgForest,
		Version: version,
		Trees:   make([]treeMessage, len(trees)),
	}
	for i, t := range trees {
		msg.Trees[i] = treeMessage{ID: t.ID, X: t.X, Z: t.Z, Radius: t.Radius}
	}
	return msg
}

// command converts a client message into a world command.
func (m clientMessage) command() (world.Command, bool) {
	switch m.Type {
	case MsgCut:
		return world.CutTree{TreeID: m.TreeID}, true
	case MsgSpawn:
		return world.SpawnHostile{X: m.X, Z: m.Z}, true
	default:
		return nil, false
	}
}
