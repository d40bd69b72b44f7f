package capacity

import (
	"math"
	"math/rand"
	"testing"
)

func TestPeakCenterEqualsAmplitude(t *testing.T) {
	p := Peak{Amplitude: 10, CenterX: 5, CenterY: 7, SigmaX: 2, SigmaY: 3}
	got := p.Eval(5, 7)
	if math.Abs(got-10) > 1e-12 {
		t.Fatalf("capacity at center = %g, want amplitude 10", got)
	}
}

func TestPeakSymmetricForEqualSigmas(t *testing.T) {
	p := Peak{Amplitude: 4, CenterX: 10, CenterY: 10, SigmaX: 3, SigmaY: 3}

	pairs := [][4]int{
		{7, 10, 13, 10},  // Reflection about center x
		{10, 6, 10, 14},  // Reflection about center y
		{8, 8, 12, 12},   // Diagonal reflection
		{12, 7, 8, 13},
	}
	for _, pr := range pairs {
		a := p.Eval(pr[0], pr[1])
		b := p.Eval(pr[2], pr[3])
		if math.Abs(a-b) > 1e-12 {
			t.Fatalf("capacity not symmetric: (%d,%d)=%g vs (%d,%d)=%g",
				pr[0], pr[1], a, pr[2], pr[3], b)
		}
	}
}

func TestFieldNeverNegative(t *testing.T) {
	f := DefaultField(50, 50)
	for y := -10; y < 60; y++ {
		for x := -10; x < 60; x++ {
			if v := f.Eval(x, y); v < 0 {
				t.Fatalf("capacity at (%d, %d) = %g, must be non-negative", x, y, v)
			}
		}
	}
}

func TestFieldSumsPeaks(t *testing.T) {
	a := Peak{Amplitude: 3, CenterX: 2, CenterY: 2, SigmaX: 1, SigmaY: 1}
	b := Peak{Amplitude: 5, CenterX: 8, CenterY: 8, SigmaX: 2, SigmaY: 2}
	f := Field{a, b}

	got := f.Eval(4, 4)
	want := a.Eval(4, 4) + b.Eval(4, 4)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("field eval = %g, want sum of peaks %g", got, want)
	}
}

func TestRandomDeterministicForSeed(t *testing.T) {
	bounds := DefaultBounds()

	f1 := Random(rand.New(rand.NewSource(7)), 50, 40, 3, bounds)
	f2 := Random(rand.New(rand.NewSource(7)), 50, 40, 3, bounds)
	if len(f1) != 3 || len(f2) != 3 {
		t.Fatalf("expected 3 peaks, got %d and %d", len(f1), len(f2))
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Fatalf("peak %d differs between identically seeded draws: %+v vs %+v", i, f1[i], f2[i])
		}
	}

	f3 := Random(rand.New(rand.NewSource(8)), 50, 40, 3, bounds)
	same := true
	for i := range f1 {
		if f1[i] != f3[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestRandomRespectsBounds(t *testing.T) {
	b := DefaultBounds()
	f := Random(rand.New(rand.NewSource(1)), 100, 80, 5, b)

	for i, p := range f {
		if p.Amplitude < b.AmplitudeMin || p.Amplitude > b.AmplitudeMax {
			t.Fatalf("peak %d amplitude %g outside [%g, %g]", i, p.Amplitude, b.AmplitudeMin, b.AmplitudeMax)
		}
		if p.CenterX < b.CenterMin*100 || p.CenterX > b.CenterMax*100 {
			t.Fatalf("peak %d center x %g outside bounds", i, p.CenterX)
		}
		if p.CenterY < b.CenterMin*80 || p.CenterY > b.CenterMax*80 {
			t.Fatalf("peak %d center y %g outside bounds", i, p.CenterY)
		}
		if p.SigmaX < b.SigmaMin*100 || p.SigmaX > b.SigmaMax*100 {
			t.Fatalf("peak %d sigma x %g outside bounds", i, p.SigmaX)
		}
	}

	if err := f.Validate(); err != nil {
		t.Fatalf("randomized field should validate: %v", err)
	}
}

func TestValidateRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name  string
		field Field
	}{
		{"empty", Field{}},
		{"zero amplitude", Field{{Amplitude: 0, SigmaX: 1, SigmaY: 1}}},
		{"negative amplitude", Field{{Amplitude: -2, SigmaX: 1, SigmaY: 1}}},
		{"zero sigma", Field{{Amplitude: 1, SigmaX: 0, SigmaY: 1}}},
		{"negative sigma", Field{{Amplitude: 1, SigmaX: 1, SigmaY: -3}}},
	}
	for _, tc := range cases {
		if err := tc.field.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
