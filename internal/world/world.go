// Package world runs the survival simulation: standing trees, the camp and
// the hostiles pathing toward it.
package world

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/udisondev/lastcamp/internal/ai"
	"github.com/udisondev/lastcamp/internal/game/forest"
	"github.com/udisondev/lastcamp/internal/game/nav"
	"github.com/udisondev/lastcamp/internal/model"
)

// Config holds simulation parameters.
type Config struct {
	Camp         model.Location
	CampRadius   float64
	HostileSpeed float64
	Agent        nav.AgentConfig
	CommandQueue int
}

// World owns all simulation state. Every method except Enqueue and
// CutEvents must be called from the simulation goroutine.
type World struct {
	cfg     Config
	forest  *forest.Forest
	planner *nav.Planner
	ai      *ai.TickManager
	ids     *ObjectIDGenerator

	hostiles map[uint32]*ai.HostileAI

	commands  chan Command
	cutEvents chan int64

	syncedVersion uint64 // forest version pushed to the planner
	sentVersion   uint64 // forest version included in the last snapshot

	tick     uint64
	clock    float64
	breaches int
}

// New creates a world. The planner's target is moved to the camp.
func New(cfg Config, f *forest.Forest, planner *nav.Planner) *World {
	queue := cfg.CommandQueue
	if queue <= 0 {
		queue = 64
	}
	planner.SetTarget(cfg.Camp.X, cfg.Camp.Z)

	w := &World{
		cfg:       cfg,
		forest:    f,
		planner:   planner,
		ai:        ai.NewTickManager(),
		ids:       NewObjectIDGenerator(),
		hostiles:  make(map[uint32]*ai.HostileAI),
		commands:  make(chan Command, queue),
		cutEvents: make(chan int64, queue),
	}
	w.syncObstacles()
	return w
}

// Enqueue queues cmd for the next step. Safe for concurrent use.
// Returns false if the queue is full.
func (w *World) Enqueue(cmd Command) bool {
	select {
	case w.commands <- cmd:
		return true
	default:
		return false
	}
}

// CutEvents delivers the IDs of trees cut in the simulation.
func (w *World) CutEvents() <-chan int64 {
	return w.cutEvents
}

// Forest returns the live tree set.
func (w *World) Forest() *forest.Forest { return w.forest }

// Planner returns the navigation planner.
func (w *World) Planner() *nav.Planner { return w.planner }

// Breaches returns the number of hostiles that reached the camp.
func (w *World) Breaches() int { return w.breaches }

// HostileCount returns the number of advancing hostiles.
func (w *World) HostileCount() int { return len(w.hostiles) }

// Clock returns simulation time in seconds.
func (w *World) Clock() float64 { return w.clock }

// Spawn places a hostile at (x, z), clamped to the world, and returns its ID.
func (w *World) Spawn(x, z float64) uint32 {
	b := w.planner.Grid().Boundary()
	pos := model.NewLocation(clamp(x, -b, b), clamp(z, -b, b))

	id := w.ids.NextHostileID()
	h := model.NewHostile(id, w.cfg.HostileSpeed, w.clock)
	ctrl := ai.NewHostileAI(h, pos, w.planner, w.cfg.Camp, w.cfg.CampRadius, w.cfg.Agent)

	w.hostiles[id] = ctrl
	w.ai.Register(id, ctrl)

	slog.Info("hostile spawned", "objectID", id, "x", pos.X, "z", pos.Z)
	return id
}

// SpawnOnEdge spreads n hostiles evenly along the world edge, inset by margin.
func (w *World) SpawnOnEdge(n int, margin float64) []uint32 {
	b := w.planner.Grid().Boundary() - margin
	ids := make([]uint32, 0, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := math.Cos(angle), math.Sin(angle)
		// project the unit circle onto the square
		scale := b / math.Max(math.Abs(cos), math.Abs(sin))
		ids = append(ids, w.Spawn(cos*scale, sin*scale))
	}
	return ids
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.drainCommands()
	w.syncObstacles()

	w.tick++
	w.clock += dt

	for _, id := range w.ai.TickAll(w.clock, dt) {
		ctrl := w.hostiles[id]
		if ctrl.Hostile().State() == model.HostileBreached {
			w.breaches++
		}
		w.ai.Unregister(id)
		delete(w.hostiles, id)
	}
}

// Run steps the world every interval until ctx is cancelled, handing each
// snapshot to onTick.
func (w *World) Run(ctx context.Context, interval time.Duration, onTick func(Snapshot)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	dt := interval.Seconds()
	slog.Info("world loop started", "interval", interval, "hostiles", len(w.hostiles), "trees", w.forest.Len())

	for {
		select {
		case <-ctx.Done():
			slog.Info("world loop stopping", "tick", w.tick, "breaches", w.breaches)
			return ctx.Err()

		case <-ticker.C:
			w.Step(dt)
			if onTick != nil {
				onTick(w.Snapshot())
			}
		}
	}
}

func (w *World) drainCommands() {
	for {
		select {
		case cmd := <-w.commands:
			cmd.apply(w)
		default:
			return
		}
	}
}

// syncObstacles pushes the forest to the planner when it changed.
// The planner rebuilds occupancy and invalidates its path cache together.
func (w *World) syncObstacles() {
	v := w.forest.Version()
	if v == w.syncedVersion {
		return
	}
	w.planner.SetObstacles(w.forest.Obstacles())
	w.syncedVersion = v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
