package gametime

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestRepeatingTimerPulse(t *testing.T) {
	timer := NewTimer(50*ms, Repeating)

	steps := []struct {
		delta        time.Duration
		wantFinished bool
		wantTimes    int
		wantElapsed  time.Duration
	}{
		{30 * ms, false, 0, 30 * ms},
		{30 * ms, true, 1, 10 * ms},
		{10 * ms, false, 0, 20 * ms},
		{130 * ms, true, 3, 0},
	}
	for i, s := range steps {
		timer.Tick(s.delta)
		if timer.JustFinished() != s.wantFinished || timer.Finished() != s.wantFinished {
			t.Errorf("step %d: finished = %v, want %v", i, timer.Finished(), s.wantFinished)
		}
		if timer.TimesFinished() != s.wantTimes {
			t.Errorf("step %d: times finished = %d, want %d", i, timer.TimesFinished(), s.wantTimes)
		}
		if timer.Elapsed() != s.wantElapsed {
			t.Errorf("step %d: elapsed = %v, want %v", i, timer.Elapsed(), s.wantElapsed)
		}
	}
}

func TestOnceTimerStaysFinished(t *testing.T) {
	timer := NewTimer(250*ms, Once)
	for i := 0; i < 4; i++ {
		timer.Tick(50 * ms)
	}
	if timer.Finished() {
		t.Fatal("finished after 200ms of a 250ms timer")
	}
	if got := timer.FractionRemaining(); got < 0.1999 || got > 0.2001 {
		t.Errorf("FractionRemaining = %v, want 0.2", got)
	}

	timer.Tick(50 * ms)
	if !timer.Finished() || !timer.JustFinished() {
		t.Fatal("expected timer to finish at 250ms")
	}
	if timer.FractionRemaining() != 0 {
		t.Errorf("FractionRemaining = %v, want 0", timer.FractionRemaining())
	}

	timer.Tick(50 * ms)
	if !timer.Finished() || timer.JustFinished() {
		t.Error("once timer should stay finished without a new pulse")
	}
	if timer.Elapsed() != 250*ms {
		t.Errorf("elapsed = %v, want clamped 250ms", timer.Elapsed())
	}
}

func TestPausedTimerKeepsPhase(t *testing.T) {
	timer := NewTimer(50*ms, Repeating)
	timer.Tick(40 * ms)
	timer.Pause()
	timer.Tick(500 * ms)
	if timer.Finished() || timer.Elapsed() != 40*ms {
		t.Fatalf("paused timer advanced: elapsed %v finished %v", timer.Elapsed(), timer.Finished())
	}
	timer.Unpause()
	timer.Tick(10 * ms)
	if !timer.JustFinished() {
		t.Error("expected the interval to complete after unpausing")
	}
}

func TestReset(t *testing.T) {
	timer := NewTimer(50*ms, Repeating)
	timer.Tick(60 * ms)
	timer.Reset()
	if timer.Finished() || timer.JustFinished() || timer.Elapsed() != 0 {
		t.Error("Reset should clear elapsed time and the finished pulse")
	}
}
