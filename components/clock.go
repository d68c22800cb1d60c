package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the single monotonic tick clock shared by every system.
// Elapsed is the end of the current tick's time step.
type ClockData struct {
	Elapsed time.Duration
	Delta   time.Duration
	Ticks   uint64
}

// Advance starts a new tick of length delta.
func (c *ClockData) Advance(delta time.Duration) {
	if delta < 0 {
		delta = 0
	}
	c.Delta = delta
	c.Elapsed += delta
	c.Ticks++
}

// TickEnd is the clock time at the end of the current tick.
func (c *ClockData) TickEnd() time.Duration { return c.Elapsed }

// TickStart is the clock time at the end of the previous tick.
func (c *ClockData) TickStart() time.Duration { return c.Elapsed - c.Delta }

// DeltaSeconds returns the tick length in seconds.
func (c *ClockData) DeltaSeconds() float64 { return c.Delta.Seconds() }

var Clock = donburi.NewComponentType[ClockData]()
