package engine

import (
	"testing"
	"time"
)

func TestEngineStopsAtMaxCycles(t *testing.T) {
	eng := NewEngine()
	eng.MaxCycles = 25

	var calls []uint64
	eng.OnCycle = func(cycle uint64) {
		calls = append(calls, cycle)
	}

	eng.Run()

	if len(calls) != 25 {
		t.Fatalf("OnCycle ran %d times, want 25", len(calls))
	}
	for i, c := range calls {
		if c != uint64(i+1) {
			t.Fatalf("call %d saw cycle %d, want %d", i, c, i+1)
		}
	}
	if eng.Running {
		t.Fatal("engine still marked running after MaxCycles")
	}
}

func TestEngineStopHaltsLoop(t *testing.T) {
	eng := NewEngine()
	eng.OnCycle = func(cycle uint64) {
		if cycle >= 10 {
			eng.Stop()
		}
	}

	done := make(chan struct{})
	go func() {
		eng.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop")
	}
	if eng.Cycle < 10 {
		t.Fatalf("engine stopped at cycle %d, before Stop was requested", eng.Cycle)
	}
}
