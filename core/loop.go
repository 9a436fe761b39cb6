package core

import (
	"math"
	"time"
)

// FixedClock turns variable frame times into a whole number of fixed ticks
// and reports how far the leftover time reaches into the next tick.
type FixedClock struct {
	timestep    time.Duration
	maxFrame    time.Duration
	accumulator time.Duration
	elapsed     time.Duration
	ticks       uint64
}

// NewFixedClock returns a clock running tickRate ticks per second. Frames
// longer than maxFrame are cut down to it; a zero maxFrame disables the cap.
func NewFixedClock(tickRate float64, maxFrame time.Duration) *FixedClock {
	if tickRate <= 0 || math.IsNaN(tickRate) || math.IsInf(tickRate, 0) {
		tickRate = 60
	}
	step := time.Duration(float64(time.Second) / tickRate)
	if step <= 0 {
		step = time.Nanosecond
	}
	return &FixedClock{
		timestep: step,
		maxFrame: maxFrame,
	}
}

// Advance adds one frame's worth of wall time to the accumulator.
func (c *FixedClock) Advance(frame time.Duration) {
	if frame < 0 {
		frame = 0
	}
	if c.maxFrame > 0 && frame > c.maxFrame {
		frame = c.maxFrame
	}
	c.accumulator += frame
}

// Expend consumes one tick from the accumulator if a whole tick is available.
func (c *FixedClock) Expend() bool {
	if c.accumulator < c.timestep {
		return false
	}
	c.accumulator -= c.timestep
	c.elapsed += c.timestep
	c.ticks++
	return true
}

// Overstep is the fraction of the next tick already covered by the
// accumulator. It is always in [0, 1) once every whole tick has been expended.
func (c *FixedClock) Overstep() float64 {
	return float64(c.accumulator) / float64(c.timestep)
}

func (c *FixedClock) Timestep() time.Duration { return c.timestep }

func (c *FixedClock) Elapsed() time.Duration { return c.elapsed }

func (c *FixedClock) Ticks() uint64 { return c.ticks }
