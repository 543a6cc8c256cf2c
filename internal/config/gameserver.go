package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/udisondev/lastcamp/internal/game/nav"
)

// Navigation holds the static pathfinding knobs for a session.
type Navigation struct {
	Boundary           float64 `yaml:"boundary"`  // half-side of the square world
	CellSize           float64 `yaml:"cell_size"` // grid resolution
	AgentRadius        float64 `yaml:"agent_radius"`
	TrunkRadius        float64 `yaml:"trunk_radius"`
	FoliageRadius      float64 `yaml:"foliage_radius"`
	ReplanInterval     float64 `yaml:"replan_interval"` // seconds
	WaypointReach      float64 `yaml:"waypoint_reach"`
	AllowCornerCutting bool    `yaml:"allow_corner_cutting"`
}

// PlannerConfig converts to the planner's parameters.
func (n Navigation) PlannerConfig() nav.Config {
	return nav.Config{
		Boundary:           n.Boundary,
		CellSize:           n.CellSize,
		AgentRadius:        n.AgentRadius,
		TrunkRadius:        n.TrunkRadius,
		FoliageRadius:      n.FoliageRadius,
		AllowCornerCutting: n.AllowCornerCutting,
	}
}

// AgentConfig converts to the waypoint follower's parameters.
func (n Navigation) AgentConfig() nav.AgentConfig {
	return nav.AgentConfig{
		ReplanInterval: n.ReplanInterval,
		WaypointReach:  n.WaypointReach,
	}
}

// Simulation holds the world loop settings.
type Simulation struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	HostileSpeed    float64       `yaml:"hostile_speed"`
	InitialHostiles int           `yaml:"initial_hostiles"`
	CampX           float64       `yaml:"camp_x"`
	CampZ           float64       `yaml:"camp_z"`
	CampRadius      float64       `yaml:"camp_radius"` // hostiles inside breach the camp
	CommandQueue    int           `yaml:"command_queue"`
}

// Forest holds procedural forest settings, used when the database has no trees.
type Forest struct {
	Seed        int64   `yaml:"seed"`
	TreeCount   int     `yaml:"tree_count"`
	MinSpacing  float64 `yaml:"min_spacing"`
	ClearRadius float64 `yaml:"clear_radius"` // tree-free zone around the camp
	EdgeMargin  float64 `yaml:"edge_margin"`
}

// GameServer holds all configuration for the game server.
type GameServer struct {
	// Network
	BindAddress  string        `yaml:"bind_address"`
	Port         int           `yaml:"port"`
	WriteTimeout time.Duration `yaml:"write_timeout"` // per websocket message

	LogLevel string `yaml:"log_level"`

	Database   DatabaseConfig `yaml:"database"`
	Navigation Navigation     `yaml:"navigation"`
	Simulation Simulation     `yaml:"simulation"`
	Forest     Forest         `yaml:"forest"`
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		BindAddress:  "0.0.0.0",
		Port:         8080,
		WriteTimeout: 5 * time.Second,
		LogLevel:     "info",
		Database:     DefaultDatabase(),
		Navigation: Navigation{
			Boundary:           nav.DefaultBoundary,
			CellSize:           nav.DefaultCellSize,
			AgentRadius:        nav.DefaultAgentRadius,
			TrunkRadius:        nav.DefaultTrunkRadius,
			FoliageRadius:      nav.DefaultFoliageRadius,
			ReplanInterval:     nav.DefaultReplanInterval,
			WaypointReach:      nav.DefaultWaypointReach,
			AllowCornerCutting: true,
		},
		Simulation: Simulation{
			TickInterval:    50 * time.Millisecond,
			HostileSpeed:    2.5,
			InitialHostiles: 8,
			CampRadius:      2,
			CommandQueue:    256,
		},
		Forest: Forest{
			Seed:        1,
			TreeCount:   400,
			MinSpacing:  2.5,
			ClearRadius: 8,
			EdgeMargin:  1,
		},
	}
}

// Validate rejects settings the simulation cannot run with.
// YAML accepts .nan and .inf, so numeric knobs must also be finite.
func (c GameServer) Validate() error {
	var errs []error
	n := c.Navigation
	if !positive(n.Boundary) {
		errs = append(errs, fmt.Errorf("navigation.boundary must be positive, got %v", n.Boundary))
	}
	if !positive(n.CellSize) {
		errs = append(errs, fmt.Errorf("navigation.cell_size must be positive, got %v", n.CellSize))
	}
	if positive(n.Boundary) && positive(n.CellSize) {
		if side := nav.GridSide(n.Boundary, n.CellSize); side > nav.MaxGridSide {
			errs = append(errs, fmt.Errorf("navigation grid too large: %v cells per side, limit %d", side, nav.MaxGridSide))
		}
	}
	if !nonNegative(n.AgentRadius) || !nonNegative(n.TrunkRadius) || !nonNegative(n.FoliageRadius) {
		errs = append(errs, errors.New("navigation radii must be finite and not negative"))
	}
	if !positive(n.ReplanInterval) {
		errs = append(errs, fmt.Errorf("navigation.replan_interval must be positive, got %v", n.ReplanInterval))
	}
	if !positive(n.WaypointReach) {
		errs = append(errs, fmt.Errorf("navigation.waypoint_reach must be positive, got %v", n.WaypointReach))
	}

	s := c.Simulation
	if s.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_interval must be positive, got %v", s.TickInterval))
	}
	if !positive(s.HostileSpeed) {
		errs = append(errs, fmt.Errorf("simulation.hostile_speed must be positive, got %v", s.HostileSpeed))
	}
	if !positive(s.CampRadius) {
		errs = append(errs, fmt.Errorf("simulation.camp_radius must be positive, got %v", s.CampRadius))
	}
	if s.CommandQueue <= 0 {
		errs = append(errs, fmt.Errorf("simulation.command_queue must be positive, got %d", s.CommandQueue))
	}
	if !(math.Abs(s.CampX) <= n.Boundary) || !(math.Abs(s.CampZ) <= n.Boundary) {
		errs = append(errs, fmt.Errorf("camp (%v, %v) is outside the world", s.CampX, s.CampZ))
	}

	f := c.Forest
	if f.TreeCount < 0 {
		errs = append(errs, fmt.Errorf("forest.tree_count must not be negative, got %d", f.TreeCount))
	}
	if !nonNegative(f.MinSpacing) || !nonNegative(f.ClearRadius) || !nonNegative(f.EdgeMargin) {
		errs = append(errs, errors.New("forest distances must be finite and not negative"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port out of range: %d", c.Port))
	}
	return errors.Join(errs...)
}

// LoadGameServer loads game server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()
	if err := loadYAML(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// positive rejects NaN and infinities along with v <= 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
