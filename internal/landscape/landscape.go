// Package landscape provides the 2D cell grid holding per-coordinate
// resource state. Cells are created once at construction and live for
// the whole run; only their resource levels change afterwards.
package landscape

import (
	"fmt"

	"github.com/talgya/landscape-sim/internal/capacity"
)

// Coord is a grid position.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell holds the resource state of one grid coordinate. Capacity is
// the ceiling fixed at construction; Resource stays in [0, Capacity].
type Cell struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Capacity float64 `json:"capacity"`
	Resource float64 `json:"resource"`
}

// Consume removes up to amount from the cell and returns what was
// actually removed, which may be less than requested. Requests are
// clamped rather than rejected; Resource never goes negative.
func (c *Cell) Consume(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if amount > c.Resource {
		amount = c.Resource
	}
	c.Resource -= amount
	return amount
}

// Regrow advances the resource toward capacity by a fractional step:
// resource += rate * (capacity - resource). Repeated calls converge on
// Capacity and never overshoot it.
func (c *Cell) Regrow(rate float64) {
	if rate <= 0 {
		return
	}
	if rate > 1 {
		rate = 1
	}
	c.Resource += rate * (c.Capacity - c.Resource)
	if c.Resource > c.Capacity {
		c.Resource = c.Capacity
	}
	if c.Resource < 0 {
		c.Resource = 0
	}
}

// Config controls landscape construction.
type Config struct {
	Width  int
	Height int
	Field  capacity.Field
}

// Landscape owns a Width x Height grid of cells, stored row-major.
type Landscape struct {
	Width  int
	Height int
	cells  []Cell
}

// New builds a fully stocked landscape: every cell's capacity comes
// from the capacity field and its initial resource equals capacity.
func New(cfg Config) (*Landscape, error) {
	if cfg.Width <= 0 {
		return nil, &ConfigurationError{Param: "width", Reason: fmt.Sprintf("%d is not positive", cfg.Width)}
	}
	if cfg.Height <= 0 {
		return nil, &ConfigurationError{Param: "height", Reason: fmt.Sprintf("%d is not positive", cfg.Height)}
	}
	if err := cfg.Field.Validate(); err != nil {
		return nil, &ConfigurationError{Param: "capacity", Reason: err.Error()}
	}

	l := &Landscape{
		Width:  cfg.Width,
		Height: cfg.Height,
		cells:  make([]Cell, cfg.Width*cfg.Height),
	}
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c := cfg.Field.Eval(x, y)
			l.cells[y*cfg.Width+x] = Cell{X: x, Y: y, Capacity: c, Resource: c}
		}
	}
	return l, nil
}

// InBounds reports whether (x, y) lies on the grid.
func (l *Landscape) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// At returns the cell at (x, y), or an OutOfBoundsError for
// coordinates outside [0, width) x [0, height).
func (l *Landscape) At(x, y int) (*Cell, error) {
	if !l.InBounds(x, y) {
		return nil, &OutOfBoundsError{X: x, Y: y, Width: l.Width, Height: l.Height}
	}
	return &l.cells[y*l.Width+x], nil
}

// mooreOffsets are the eight neighbor offsets in lexicographic
// coordinate order (x first, then y) so neighbor iteration is stable.
var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the in-bounds Moore neighborhood of (x, y).
// Interior cells have 8 neighbors, edge cells 5, corner cells 3.
func (l *Landscape) Neighbors(x, y int) []Coord {
	out := make([]Coord, 0, 8)
	for _, d := range mooreOffsets {
		nx, ny := x+d[0], y+d[1]
		if l.InBounds(nx, ny) {
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}

// RegrowAll applies one regrowth step to every cell. Cells are
// independent during regrowth, so order does not matter here.
func (l *Landscape) RegrowAll(rate float64) {
	for i := range l.cells {
		l.cells[i].Regrow(rate)
	}
}

// Snapshot returns a copy of the current resource levels, indexed
// [y][x]. Mutating the copy does not touch the landscape.
func (l *Landscape) Snapshot() [][]float64 {
	out := make([][]float64, l.Height)
	for y := 0; y < l.Height; y++ {
		row := make([]float64, l.Width)
		for x := 0; x < l.Width; x++ {
			row[x] = l.cells[y*l.Width+x].Resource
		}
		out[y] = row
	}
	return out
}

// TotalResource returns the sum of resource over all cells.
func (l *Landscape) TotalResource() float64 {
	total := 0.0
	for i := range l.cells {
		total += l.cells[i].Resource
	}
	return total
}

// MaxCapacity returns the largest cell capacity on the grid.
func (l *Landscape) MaxCapacity() float64 {
	max := 0.0
	for i := range l.cells {
		if l.cells[i].Capacity > max {
			max = l.cells[i].Capacity
		}
	}
	return max
}
