package agent

import (
	"sort"

	"github.com/talgya/landscape-sim/internal/landscape"
)

// Policy selects an agent's next cell. Implementations must be
// deterministic given identical landscape state so that runs with the
// same configuration reproduce the same trajectories.
type Policy interface {
	Choose(land *landscape.Landscape, x, y int) landscape.Coord
}

// Greedy moves to the highest-resource cell among the current cell
// and its in-bounds Moore neighbors. Ties go to the lexicographically
// smallest coordinate (x first, then y), so staying in place wins a
// tie only when the current cell sorts first.
type Greedy struct{}

// Choose implements Policy.
func (Greedy) Choose(land *landscape.Landscape, x, y int) landscape.Coord {
	candidates := append(land.Neighbors(x, y), landscape.Coord{X: x, Y: y})
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].X != candidates[j].X {
			return candidates[i].X < candidates[j].X
		}
		return candidates[i].Y < candidates[j].Y
	})

	best := landscape.Coord{X: x, Y: y}
	bestResource := -1.0
	for _, c := range candidates {
		cell, err := land.At(c.X, c.Y)
		if err != nil {
			continue
		}
		if cell.Resource > bestResource {
			best = c
			bestResource = cell.Resource
		}
	}
	return best
}
