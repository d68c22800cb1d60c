package components

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	math2 "github.com/yohamta/donburi/features/math"
)

func TestDashStepSumsToDistance(t *testing.T) {
	settings := &DashSettingsData{
		IntentWindow: 100 * ms,
		Distance:     800,
		Duration:     250 * ms,
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := range 50 {
		start := time.Duration(rng.IntN(1000)) * ms
		dash := &DashData{StartTime: start, Direction: math2.Vec2{X: 0.6, Y: -0.8}}

		var moved math2.Vec2
		var consumed time.Duration
		tickStart := start
		for tickStart < start+400*ms {
			delta := time.Duration(1+rng.IntN(40)) * ms
			step := dash.Step(settings, tickStart, delta)
			consumed += step
			moved = moved.Add(dash.Displacement(settings, step))
			tickStart += delta
		}

		if consumed != settings.Duration {
			t.Errorf("trial %d: consumed %v, want %v", trial, consumed, settings.Duration)
		}
		if got := math.Hypot(moved.X, moved.Y); math.Abs(got-settings.Distance) > 1e-9 {
			t.Errorf("trial %d: moved %v, want %v", trial, got, settings.Distance)
		}
	}
}

func TestDashStepAfterDurationIsZero(t *testing.T) {
	settings := &DashSettingsData{Distance: 800, Duration: 250 * ms}
	dash := &DashData{Direction: math2.Vec2{X: 1}}

	if got := dash.Step(settings, 250*ms, 16*ms); got != 0 {
		t.Errorf("step past the end = %v, want 0", got)
	}
	if got := dash.Step(settings, 240*ms, 16*ms); got != 10*ms {
		t.Errorf("final partial step = %v, want 10ms", got)
	}
	if d := dash.Displacement(settings, 0); d.X != 0 || d.Y != 0 {
		t.Errorf("zero step displacement = %v", d)
	}
}

func TestTranslationHistoryRecord(t *testing.T) {
	h := TranslationHistoryData{Previous: math2.Vec2{X: 1, Y: 2}}
	h.Record(math2.Vec2{X: 4, Y: 0})
	if h.Delta != (math2.Vec2{X: 3, Y: -2}) || h.Previous != (math2.Vec2{X: 4, Y: 0}) {
		t.Fatalf("after move: %+v", h)
	}
	h.Record(math2.Vec2{X: 4, Y: 0})
	if h.Delta != (math2.Vec2{}) {
		t.Errorf("delta without motion = %v, want zero", h.Delta)
	}
}

func TestClockAdvance(t *testing.T) {
	var c ClockData
	c.Advance(16 * ms)
	c.Advance(20 * ms)
	if c.TickEnd() != 36*ms || c.TickStart() != 16*ms || c.Ticks != 2 {
		t.Errorf("clock = %+v, want end 36ms start 16ms ticks 2", c)
	}
	c.Advance(-5 * ms)
	if c.Delta != 0 || c.TickEnd() != 36*ms {
		t.Errorf("negative delta moved the clock: %+v", c)
	}
}
