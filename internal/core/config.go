package core

import "time"

// TickRate is the number of simulation steps per second. Games move
// entities by fixed amounts per step, so every presenter runs at this rate.
const TickRate = 60

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for timing and for deterministic simulation.
type RuntimeConfig struct {
	Seed  int64 // RNG seed; 0 means use current time in platform layer
	Clock Clock // Millisecond clock; nil means a fresh SystemClock
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Clock yields monotonically increasing milliseconds.
type Clock interface {
	Millis() int64
}

// SystemClock measures wall time since its creation using the monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a clock advanced explicitly, for tests and replays.
type ManualClock struct {
	Now int64
}

// Millis returns the current manual time.
func (c *ManualClock) Millis() int64 {
	return c.Now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.Now += ms
}
