// Package capacity provides the Gaussian resource capacity model.
// A Field assigns every grid coordinate a fixed ceiling resource level;
// cells regrow toward that ceiling each cycle.
package capacity

import (
	"fmt"
	"math"
	"math/rand"
)

// Peak is a single 2D Gaussian resource peak.
type Peak struct {
	Amplitude float64 `json:"amplitude"` // Capacity at the peak center
	CenterX   float64 `json:"center_x"`
	CenterY   float64 `json:"center_y"`
	SigmaX    float64 `json:"sigma_x"` // Spread along x, must be positive
	SigmaY    float64 `json:"sigma_y"` // Spread along y, must be positive
}

// Eval returns the peak's contribution at integer grid coordinates.
// Exactly Amplitude at the center, asymptotically zero far from it,
// never negative.
func (p Peak) Eval(x, y int) float64 {
	dx := float64(x) - p.CenterX
	dy := float64(y) - p.CenterY
	return p.Amplitude * math.Exp(-(dx*dx/(2*p.SigmaX*p.SigmaX) + dy*dy/(2*p.SigmaY*p.SigmaY)))
}

// Field is a sum of Gaussian peaks covering the whole landscape.
// Parameters are fixed once at construction and reused for every
// coordinate, so one field produces one smooth resource surface.
type Field []Peak

// Eval returns the total capacity at (x, y).
func (f Field) Eval(x, y int) float64 {
	total := 0.0
	for _, p := range f {
		total += p.Eval(x, y)
	}
	return total
}

// Validate reports the first invalid peak parameter, if any.
func (f Field) Validate() error {
	if len(f) == 0 {
		return fmt.Errorf("capacity field has no peaks")
	}
	for i, p := range f {
		if p.Amplitude <= 0 {
			return fmt.Errorf("peak %d: amplitude %g must be positive", i, p.Amplitude)
		}
		if p.SigmaX <= 0 || p.SigmaY <= 0 {
			return fmt.Errorf("peak %d: sigma (%g, %g) must be positive", i, p.SigmaX, p.SigmaY)
		}
	}
	return nil
}

// Bounds holds the ranges randomized peak parameters are drawn from.
// Center and sigma are fractions of the landscape dimensions so the
// same bounds work at any grid size.
type Bounds struct {
	AmplitudeMin float64
	AmplitudeMax float64
	CenterMin    float64 // Fraction of width/height
	CenterMax    float64
	SigmaMin     float64 // Fraction of width/height
	SigmaMax     float64
}

// DefaultBounds returns the standard randomization ranges.
func DefaultBounds() Bounds {
	return Bounds{
		AmplitudeMin: 1.0,
		AmplitudeMax: 5.0,
		CenterMin:    0.1,
		CenterMax:    0.9,
		SigmaMin:     0.1,
		SigmaMax:     0.5,
	}
}

// DefaultField returns the fixed two-peak field used when
// randomization is off: equal peaks at 25% and 75% of the grid.
func DefaultField(width, height int) Field {
	w := float64(width)
	h := float64(height)
	return Field{
		{Amplitude: 4.0, CenterX: 0.25 * w, CenterY: 0.25 * h, SigmaX: 0.3 * w, SigmaY: 0.3 * h},
		{Amplitude: 4.0, CenterX: 0.75 * w, CenterY: 0.75 * h, SigmaX: 0.3 * w, SigmaY: 0.3 * h},
	}
}

// Random draws a field of peaks from the given bounds. Parameters are
// drawn once and reused for every coordinate. The rng is passed in
// explicitly so a fixed seed reproduces the same field.
func Random(rng *rand.Rand, width, height, peaks int, b Bounds) Field {
	if peaks <= 0 {
		peaks = 1
	}
	w := float64(width)
	h := float64(height)
	f := make(Field, 0, peaks)
	for i := 0; i < peaks; i++ {
		f = append(f, Peak{
			Amplitude: uniform(rng, b.AmplitudeMin, b.AmplitudeMax),
			CenterX:   uniform(rng, b.CenterMin, b.CenterMax) * w,
			CenterY:   uniform(rng, b.CenterMin, b.CenterMax) * h,
			SigmaX:    uniform(rng, b.SigmaMin, b.SigmaMax) * w,
			SigmaY:    uniform(rng, b.SigmaMin, b.SigmaMax) * h,
		})
	}
	return f
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
