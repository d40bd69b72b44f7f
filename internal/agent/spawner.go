// Agent spawning — creates the initial batch at fixed or randomized
// start positions. Agents are issued sequential IDs so that engine
// iteration order matches creation order.
package agent

import (
	"fmt"
	"math/rand"

	"github.com/talgya/landscape-sim/internal/landscape"
)

// SpawnConfig controls batch initialization.
type SpawnConfig struct {
	Count         int
	InitialEnergy float64
	Consumption   float64
	Metabolism    float64

	// Positions fixes start coordinates. Empty means every agent gets
	// an independent uniformly random in-bounds start instead.
	Positions []landscape.Coord
}

// DefaultSpawnConfig returns the standard batch settings.
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Count:       10,
		Consumption: 1.0,
	}
}

// Spawner creates agents for the simulation.
type Spawner struct {
	rng    *rand.Rand
	nextID ID
}

// NewSpawner creates an agent spawner with the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

// Spawn creates cfg.Count independent agents inside a width x height
// grid. With fixed positions the list is used verbatim and must match
// the count; every position must be in bounds.
func (s *Spawner) Spawn(cfg SpawnConfig, width, height int) ([]*Agent, error) {
	if cfg.Count <= 0 {
		return nil, &landscape.ConfigurationError{Param: "agents", Reason: fmt.Sprintf("count %d is not positive", cfg.Count)}
	}
	if cfg.Consumption < 0 {
		return nil, &landscape.ConfigurationError{Param: "consumption", Reason: fmt.Sprintf("%g is negative", cfg.Consumption)}
	}
	if len(cfg.Positions) > 0 && len(cfg.Positions) != cfg.Count {
		return nil, &landscape.ConfigurationError{
			Param:  "positions",
			Reason: fmt.Sprintf("%d fixed positions for %d agents", len(cfg.Positions), cfg.Count),
		}
	}

	agents := make([]*Agent, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		var pos landscape.Coord
		if len(cfg.Positions) > 0 {
			pos = cfg.Positions[i]
			if pos.X < 0 || pos.X >= width || pos.Y < 0 || pos.Y >= height {
				return nil, &landscape.ConfigurationError{
					Param:  "positions",
					Reason: fmt.Sprintf("(%d, %d) outside %dx%d landscape", pos.X, pos.Y, width, height),
				}
			}
		} else {
			pos = landscape.Coord{X: s.rng.Intn(width), Y: s.rng.Intn(height)}
		}

		agents = append(agents, &Agent{
			ID:          s.issueID(),
			X:           pos.X,
			Y:           pos.Y,
			Energy:      cfg.InitialEnergy,
			Consumption: cfg.Consumption,
			Metabolism:  cfg.Metabolism,
			policy:      Greedy{},
		})
	}
	return agents, nil
}

func (s *Spawner) issueID() ID {
	id := s.nextID
	s.nextID++
	return id
}
