// Simulation ties the landscape and agents together and advances them
// one cycle at a time.
package engine

import (
	"log/slog"

	"github.com/talgya/landscape-sim/internal/agent"
	"github.com/talgya/landscape-sim/internal/landscape"
)

// historyCap bounds the in-memory stats history.
const historyCap = 1000

// Simulation holds the complete world state. A cycle is: regrow every
// cell once, then step each agent in creation order. The order is
// deliberate — each consume is immediately visible to the next agent,
// so a stable iteration order is what makes runs reproducible.
type Simulation struct {
	Land   *landscape.Landscape
	Agents []*agent.Agent

	// RegrowthRate is the fractional per-cycle recovery toward
	// capacity, in (0, 1].
	RegrowthRate float64

	// Cycle is the number of completed cycles.
	Cycle uint64

	// Stats holds the aggregates after the most recent cycle.
	Stats Stats

	// History keeps recent per-cycle stats for the API and telemetry.
	History []Stats
}

// Stats is the aggregate world snapshot after a cycle.
type Stats struct {
	Cycle         uint64  `json:"cycle"`
	Population    int     `json:"population"`
	TotalEnergy   float64 `json:"total_energy"`
	TotalResource float64 `json:"total_resource"`
	PeakResource  float64 `json:"peak_resource"`
}

// NewSimulation creates a Simulation from constructed components.
func NewSimulation(land *landscape.Landscape, agents []*agent.Agent, rate float64) *Simulation {
	s := &Simulation{
		Land:         land,
		Agents:       agents,
		RegrowthRate: rate,
	}
	s.updateStats()
	return s
}

// RunCycle advances the world by one cycle.
func (s *Simulation) RunCycle() {
	s.Cycle++

	s.Land.RegrowAll(s.RegrowthRate)
	for _, a := range s.Agents {
		a.Step(s.Land)
	}

	s.updateStats()
	s.History = append(s.History, s.Stats)
	if len(s.History) > historyCap {
		s.History = s.History[len(s.History)-historyCap:]
	}

	slog.Debug("cycle complete",
		"cycle", s.Cycle,
		"total_energy", s.Stats.TotalEnergy,
		"total_resource", s.Stats.TotalResource,
	)
}

// Positions returns the current agent coordinates in creation order.
func (s *Simulation) Positions() []landscape.Coord {
	out := make([]landscape.Coord, len(s.Agents))
	for i, a := range s.Agents {
		out[i] = landscape.Coord{X: a.X, Y: a.Y}
	}
	return out
}

func (s *Simulation) updateStats() {
	totalEnergy := 0.0
	for _, a := range s.Agents {
		totalEnergy += a.Energy
	}

	totalResource := 0.0
	peak := 0.0
	for _, row := range s.Land.Snapshot() {
		for _, r := range row {
			totalResource += r
			if r > peak {
				peak = r
			}
		}
	}

	s.Stats = Stats{
		Cycle:         s.Cycle,
		Population:    len(s.Agents),
		TotalEnergy:   totalEnergy,
		TotalResource: totalResource,
		PeakResource:  peak,
	}
}
