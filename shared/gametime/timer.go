// Package gametime provides timers driven by the tick clock rather than wall time.
package gametime

import "time"

// TimerMode selects whether a timer stops or restarts after finishing.
type TimerMode int

const (
	Once TimerMode = iota
	Repeating
)

// Timer counts tick-clock time up to a fixed duration.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode
	paused   bool
	finished bool
	// timesFinished is the number of completions during the last Tick.
	timesFinished int
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by delta. Paused timers do not advance and clear
// their finished pulse.
func (t *Timer) Tick(delta time.Duration) {
	if t.paused {
		t.timesFinished = 0
		if t.mode == Repeating {
			t.finished = false
		}
		return
	}
	if t.mode == Once && t.finished {
		t.timesFinished = 0
		return
	}

	t.elapsed += delta
	t.finished = t.elapsed >= t.duration
	if !t.finished {
		t.timesFinished = 0
		return
	}

	if t.mode == Once {
		t.timesFinished = 1
		t.elapsed = t.duration
		return
	}
	if t.duration <= 0 {
		t.timesFinished = 1
		t.elapsed = 0
		return
	}
	t.timesFinished = int(t.elapsed / t.duration)
	t.elapsed %= t.duration
}

// Finished reports whether the timer completed. For repeating timers this is
// only true on the tick where an interval completed.
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the timer completed during the last Tick.
func (t *Timer) JustFinished() bool { return t.timesFinished > 0 }

// TimesFinished returns how many intervals completed during the last Tick.
func (t *Timer) TimesFinished() int { return t.timesFinished }

func (t *Timer) Pause()          { t.paused = true }
func (t *Timer) Unpause()        { t.paused = false }
func (t *Timer) Paused() bool    { return t.paused }
func (t *Timer) Mode() TimerMode { return t.mode }

func (t *Timer) Elapsed() time.Duration  { return t.elapsed }
func (t *Timer) Duration() time.Duration { return t.duration }

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// FractionRemaining returns 1 - Fraction().
func (t *Timer) FractionRemaining() float64 {
	return 1 - t.Fraction()
}

// Reset rewinds the timer without changing its pause state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesFinished = 0
}
