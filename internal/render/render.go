// Package render draws the resource map to a terminal. It consumes
// the core's public snapshot and agent positions and contains no
// simulation logic.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/talgya/landscape-sim/internal/engine"
	"github.com/talgya/landscape-sim/internal/landscape"
)

// ANSI background colors for resource buckets, low to high.
var colorMap = [...]string{
	"\033[30;100m",
	"\033[30;106m",
	"\033[30;46m",
	"\033[30;104m",
	"\033[30;44m",
	"\033[30;45m",
	"\033[30;105m",
	"\033[30;101m",
	"\033[30;41m",
	"\033[30;40m",
}

const (
	reset        = "\033[0m"
	agentColor   = "\033[30;43m"
	clearScreen  = "\033[2J"
	cursorUpLeft = "\033[H"
)

// Renderer writes ANSI frames of the resource grid. Color output is
// used only when the writer is a terminal; otherwise frames fall back
// to a plain digit grid.
type Renderer struct {
	Out   io.Writer
	Color bool
}

// New creates a renderer for the given file, detecting TTY support.
func New(out *os.File) *Renderer {
	return &Renderer{
		Out:   out,
		Color: isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()),
	}
}

// Frame draws the full resource map with agent markers and a stats
// footer. maxCapacity scales resource levels into color buckets.
func (r *Renderer) Frame(sim *engine.Simulation, maxCapacity float64) {
	grid := sim.Land.Snapshot()

	occupied := make(map[landscape.Coord]bool, len(sim.Agents))
	for _, a := range sim.Agents {
		occupied[landscape.Coord{X: a.X, Y: a.Y}] = true
	}

	var b strings.Builder
	if r.Color {
		b.WriteString(clearScreen)
		b.WriteString(cursorUpLeft)
	}

	rule := strings.Repeat("=", sim.Land.Width*2)
	fmt.Fprintf(&b, "%s\nLandscape Map (cycle %d):\n%s\n", rule, sim.Cycle, rule)

	for y, row := range grid {
		for x, res := range row {
			if r.Color {
				if occupied[landscape.Coord{X: x, Y: y}] {
					b.WriteString(agentColor + "  " + reset)
				} else {
					b.WriteString(colorMap[bucket(res, maxCapacity)] + "  " + reset)
				}
			} else {
				if occupied[landscape.Coord{X: x, Y: y}] {
					b.WriteString("A ")
				} else {
					fmt.Fprintf(&b, "%d ", bucket(res, maxCapacity))
				}
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%s\nAgents: %s  Energy: %s  Resource: %s\n%s\n",
		rule,
		humanize.Comma(int64(sim.Stats.Population)),
		humanize.CommafWithDigits(sim.Stats.TotalEnergy, 1),
		humanize.CommafWithDigits(sim.Stats.TotalResource, 1),
		rule,
	)

	io.WriteString(r.Out, b.String())
}

// Summary writes a one-line run summary.
func (r *Renderer) Summary(sim *engine.Simulation) {
	fmt.Fprintf(r.Out, "cycle %s: %s agents, %s energy accumulated, %s resource remaining\n",
		humanize.Comma(int64(sim.Cycle)),
		humanize.Comma(int64(sim.Stats.Population)),
		humanize.CommafWithDigits(sim.Stats.TotalEnergy, 1),
		humanize.CommafWithDigits(sim.Stats.TotalResource, 1),
	)
}

// bucket maps a resource level onto a color map index.
func bucket(res, maxCapacity float64) int {
	if maxCapacity <= 0 {
		return 0
	}
	i := int(res / maxCapacity * float64(len(colorMap)-1))
	if i < 0 {
		i = 0
	}
	if i >= len(colorMap) {
		i = len(colorMap) - 1
	}
	return i
}
