// Command landsim runs the Gaussian resource landscape simulation.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talgya/landscape-sim/internal/agent"
	"github.com/talgya/landscape-sim/internal/api"
	"github.com/talgya/landscape-sim/internal/capacity"
	"github.com/talgya/landscape-sim/internal/engine"
	"github.com/talgya/landscape-sim/internal/landscape"
	"github.com/talgya/landscape-sim/internal/persistence"
	"github.com/talgya/landscape-sim/internal/render"
)

// runConfig is stored as JSON with the run's telemetry.
type runConfig struct {
	Cycles      uint64         `json:"cycles"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Agents      int            `json:"agents"`
	Seed        int64          `json:"seed"`
	Randomize   bool           `json:"randomize"`
	Peaks       int            `json:"peaks"`
	Rate        float64        `json:"rate"`
	Consumption float64        `json:"consumption"`
	Metabolism  float64        `json:"metabolism"`
	Endowment   float64        `json:"endowment"`
	Field       capacity.Field `json:"field"`
}

func main() {
	cycles := flag.Uint64("cycles", 500, "number of cycles to run (0 = until interrupted)")
	width := flag.Int("width", 50, "landscape width")
	height := flag.Int("height", 50, "landscape height")
	agents := flag.Int("agents", 250, "number of agents")
	seed := flag.Int64("seed", 42, "random seed for capacity and agent placement")
	randomize := flag.Bool("randomize", false, "draw capacity peak parameters from randomized ranges")
	peaks := flag.Int("peaks", 2, "number of Gaussian peaks when randomizing")
	rate := flag.Float64("rate", 0.25, "fractional per-cycle regrowth toward capacity (0, 1]")
	consumption := flag.Float64("consumption", 1.0, "resource amount each agent requests per cycle")
	metabolism := flag.Float64("metabolism", 0.0, "per-cycle agent energy drain (0 disables)")
	endowment := flag.Float64("endowment", 0.0, "initial agent energy")
	sleep := flag.Duration("sleep", 0, "delay between cycles, for readability")
	display := flag.Bool("display", false, "draw the resource map each cycle")
	dbPath := flag.String("db", "", "SQLite path for run telemetry (empty disables)")
	apiPort := flag.Int("port", 0, "HTTP API port (0 disables)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// ── Capacity field ───────────────────────────────────────────────
	var field capacity.Field
	if *randomize {
		rng := rand.New(rand.NewSource(*seed))
		field = capacity.Random(rng, *width, *height, *peaks, capacity.DefaultBounds())
	} else {
		field = capacity.DefaultField(*width, *height)
	}

	// ── Landscape and agents ─────────────────────────────────────────
	land, err := landscape.New(landscape.Config{Width: *width, Height: *height, Field: field})
	if err != nil {
		slog.Error("failed to build landscape", "error", err)
		os.Exit(1)
	}

	spawner := agent.NewSpawner(*seed + 1)
	batch, err := spawner.Spawn(agent.SpawnConfig{
		Count:         *agents,
		InitialEnergy: *endowment,
		Consumption:   *consumption,
		Metabolism:    *metabolism,
	}, *width, *height)
	if err != nil {
		slog.Error("failed to spawn agents", "error", err)
		os.Exit(1)
	}

	sim := engine.NewSimulation(land, batch, *rate)
	slog.Info("world ready",
		"width", *width, "height", *height,
		"agents", len(batch),
		"peaks", len(field),
		"total_resource", sim.Stats.TotalResource,
	)

	// ── Telemetry ────────────────────────────────────────────────────
	var db *persistence.DB
	var runID string
	if *dbPath != "" {
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		runID, err = db.CreateRun(runConfig{
			Cycles: *cycles, Width: *width, Height: *height, Agents: *agents,
			Seed: *seed, Randomize: *randomize, Peaks: *peaks, Rate: *rate,
			Consumption: *consumption, Metabolism: *metabolism, Endowment: *endowment,
			Field: field,
		})
		if err != nil {
			slog.Error("failed to create run record", "error", err)
			os.Exit(1)
		}
		slog.Info("telemetry enabled", "path", *dbPath, "run_id", runID)
	}

	// ── Rendering ────────────────────────────────────────────────────
	var renderer *render.Renderer
	maxCap := land.MaxCapacity()
	if *display {
		renderer = render.New(os.Stdout)
		renderer.Frame(sim, maxCap)
	}

	// ── Engine ───────────────────────────────────────────────────────
	eng := engine.NewEngine()
	eng.Interval = *sleep
	eng.MaxCycles = *cycles
	eng.OnCycle = func(cycle uint64) {
		sim.RunCycle()

		if renderer != nil {
			renderer.Frame(sim, maxCap)
		}
		if db != nil {
			if err := db.RecordCycle(runID, sim.Stats); err != nil {
				slog.Warn("telemetry write failed", "error", err)
			}
		}
		if cycle%100 == 0 {
			slog.Info("progress",
				"cycle", cycle,
				"total_energy", sim.Stats.TotalEnergy,
				"total_resource", sim.Stats.TotalResource,
			)
		}
	}

	if *apiPort > 0 {
		apiServer := &api.Server{Sim: sim, Eng: eng, Port: *apiPort}
		apiServer.Start()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	start := time.Now()
	eng.Run()

	if db != nil {
		if err := db.FinishRun(runID, sim.Cycle); err != nil {
			slog.Warn("telemetry finish failed", "error", err)
		}
	}

	render.New(os.Stdout).Summary(sim)
	slog.Info("run complete", "cycles", sim.Cycle, "elapsed", time.Since(start).Round(time.Millisecond))
}
