// Package agent provides the mobile resource consumers that roam the
// landscape. Each agent runs one observe/decide/move/consume
// transition per simulation cycle.
package agent

import (
	"github.com/talgya/landscape-sim/internal/landscape"
)

// ID is a unique identifier for an agent, issued sequentially.
type ID uint64

// Agent is one mobile resource consumer. After construction only its
// position and energy change. Agents read and write landscape state
// through landscape operations and never retain cell pointers across
// cycles.
type Agent struct {
	ID ID  `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`

	// Energy accumulates the actually-consumed resource.
	Energy float64 `json:"energy"`

	// Consumption is the amount requested from the destination cell
	// each cycle. The cell clamps what it actually hands over.
	Consumption float64 `json:"consumption"`

	// Metabolism is an optional per-cycle energy drain, floored at
	// zero. Zero disables upkeep.
	Metabolism float64 `json:"metabolism,omitempty"`

	policy Policy
}

// SetPolicy swaps the agent's movement policy. Mainly useful for
// experiments with alternative strategies; nil falls back to Greedy.
func (a *Agent) SetPolicy(p Policy) {
	a.policy = p
}

// Step runs one cycle transition: observe the current cell and its
// neighbors, move to the policy's choice, consume there. It never
// fails — an agent with no resource in reach consumes 0 and its
// energy is unchanged.
func (a *Agent) Step(land *landscape.Landscape) {
	policy := a.policy
	if policy == nil {
		policy = Greedy{}
	}

	dest := policy.Choose(land, a.X, a.Y)
	cell, err := land.At(dest.X, dest.Y)
	if err != nil {
		// Policy picked an out-of-bounds cell; stay put this cycle.
		return
	}

	a.X, a.Y = dest.X, dest.Y
	a.Energy += cell.Consume(a.Consumption)

	if a.Metabolism > 0 {
		a.Energy -= a.Metabolism
		if a.Energy < 0 {
			a.Energy = 0
		}
	}
}
