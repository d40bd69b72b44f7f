// Package engine provides the cycle-based simulation loop.
package engine

import (
	"log/slog"
	"time"
)

// Engine paces cycle execution in wall-clock time. All simulation
// logic lives in the OnCycle callback; the engine only schedules it.
type Engine struct {
	Cycle    uint64        // Current cycle counter (monotonic)
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Base delay between cycles (0 = no pacing)
	Running  bool

	// MaxCycles stops the loop after this many cycles. 0 = unlimited.
	MaxCycles uint64

	// OnCycle runs once per cycle — populated during setup.
	OnCycle func(cycle uint64)
}

// NewEngine creates a simulation engine with default settings.
func NewEngine() *Engine {
	return &Engine{
		Speed:    1.0,
		Interval: 0,
	}
}

// Run starts the loop. Blocks until Stop() is called or MaxCycles is
// reached.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("simulation engine started", "cycle", e.Cycle, "max_cycles", e.MaxCycles, "interval", e.Interval)

	for e.Running {
		if e.Speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		e.Cycle++
		if e.OnCycle != nil {
			e.OnCycle(e.Cycle)
		}

		if e.MaxCycles > 0 && e.Cycle >= e.MaxCycles {
			e.Running = false
			break
		}

		// Sleep for the remainder of the interval, adjusted for speed.
		if e.Interval > 0 {
			elapsed := time.Since(start)
			target := time.Duration(float64(e.Interval) / e.Speed)
			if elapsed < target {
				time.Sleep(target - elapsed)
			}
		}
	}

	slog.Info("simulation engine stopped", "cycle", e.Cycle)
}

// Stop halts the loop after the current cycle.
func (e *Engine) Stop() {
	e.Running = false
}
