package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/lastcamp/internal/ai"
	"github.com/udisondev/lastcamp/internal/config"
	"github.com/udisondev/lastcamp/internal/db"
	"github.com/udisondev/lastcamp/internal/game/forest"
	"github.com/udisondev/lastcamp/internal/game/nav"
	"github.com/udisondev/lastcamp/internal/gameserver"
	"github.com/udisondev/lastcamp/internal/model"
	"github.com/udisondev/lastcamp/internal/world"
)

const (
	GameConfigPath = "config/gameserver.yaml"

	cutWriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := GameConfigPath
	if p := os.Getenv("LASTCAMP_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("lastcamp server starting",
		"log_level", cfg.LogLevel,
		"bind", cfg.BindAddress,
		"port", cfg.Port)

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	trees := db.NewTreeRepository(database.Pool())
	layout, err := loadForest(ctx, trees, cfg)
	if err != nil {
		return err
	}

	camp := model.NewLocation(cfg.Simulation.CampX, cfg.Simulation.CampZ)
	planner, err := nav.NewPlanner(cfg.Navigation.PlannerConfig(), nav.Point{X: camp.X, Z: camp.Z})
	if err != nil {
		return fmt.Errorf("creating planner: %w", err)
	}

	w := world.New(world.Config{
		Camp:         camp,
		CampRadius:   cfg.Simulation.CampRadius,
		HostileSpeed: cfg.Simulation.HostileSpeed,
		Agent:        cfg.Navigation.AgentConfig(),
		CommandQueue: cfg.Simulation.CommandQueue,
	}, forest.New(layout), planner)

	spawned := w.SpawnOnEdge(cfg.Simulation.InitialHostiles, cfg.Forest.EdgeMargin)
	slog.Info("world ready",
		"trees", len(layout),
		"hostiles", len(spawned),
		"grid_width", planner.Grid().Width(),
		"grid_height", planner.Grid().Height(),
		"blocked_cells", planner.Occupancy().BlockedCount())

	hub := gameserver.NewHub(w, cfg.WriteTimeout)
	server := gameserver.NewServer(net.JoinHostPort(cfg.BindAddress, strconv.Itoa(cfg.Port)), hub)
	persister := db.NewCutPersister(trees, cutWriteTimeout)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting world loop", "interval", cfg.Simulation.TickInterval)
		if err := w.Run(gctx, cfg.Simulation.TickInterval, hub.Publish); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("world loop: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := persister.Run(gctx, w.CutEvents()); err != nil {
			return fmt.Errorf("cut persister: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := server.Serve(gctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("lastcamp server stopped")
	return nil
}

// loadForest returns the stored tree layout, generating and storing a new
// one when the database has no live trees.
func loadForest(ctx context.Context, repo *db.TreeRepository, cfg config.GameServer) ([]forest.Tree, error) {
	live, err := repo.LoadLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trees: %w", err)
	}
	if len(live) > 0 {
		slog.Info("forest loaded", "trees", len(live))
		return live, nil
	}

	generated := forest.Generate(forest.GenerateConfig{
		Boundary:    cfg.Navigation.Boundary,
		Count:       cfg.Forest.TreeCount,
		Radius:      cfg.Navigation.PlannerConfig().TreeRadius(),
		MinSpacing:  cfg.Forest.MinSpacing,
		ClearX:      cfg.Simulation.CampX,
		ClearZ:      cfg.Simulation.CampZ,
		ClearRadius: cfg.Forest.ClearRadius,
		Margin:      cfg.Forest.EdgeMargin,
	}, rand.New(rand.NewSource(cfg.Forest.Seed)))

	stored, err := repo.InsertAll(ctx, generated)
	if err != nil {
		return nil, fmt.Errorf("storing generated forest: %w", err)
	}
	slog.Info("forest generated", "seed", cfg.Forest.Seed, "requested", cfg.Forest.TreeCount, "placed", len(stored))
	return stored, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
