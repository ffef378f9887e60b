package core

import "time"

// Clock supplies monotonic game time. The game advances it once per
// simulated frame and reads elapsed time for its timers.
type Clock interface {
	Advance()
	Now() time.Duration
}

// FrameClock derives elapsed time from a frame counter and a fixed tick rate,
// so the same number of frames always yields the same elapsed time.
type FrameClock struct {
	frames   int64
	tickRate int
}

// NewFrameClock creates a frame clock for the given tick rate.
// Non-positive rates fall back to 60.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{tickRate: tickRate}
}

// Advance moves the clock forward by one frame.
func (c *FrameClock) Advance() {
	c.frames++
}

// Now returns the elapsed time since the clock was created.
func (c *FrameClock) Now() time.Duration {
	return time.Duration(c.frames) * time.Second / time.Duration(c.tickRate)
}

// Frames returns the number of frames elapsed.
func (c *FrameClock) Frames() int64 {
	return c.frames
}
