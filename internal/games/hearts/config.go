package hearts

import "github.com/vovakirdan/heart-quest/internal/config"

// WorthTable is drawn from uniformly when a heart respawns:
// worth 1 with 60% probability, 2 and 3 with 20% each.
var WorthTable = [...]int{1, 1, 1, 2, 3}

// Config holds the immutable rules and dimensions of a session.
// Every entity receives it at construction instead of reading globals.
type Config struct {
	Width, Height float64 // World size

	HeartCount        int
	HeartSize         float64 // Collision radius and outline scale baseline
	HeartMinSpeed     float64
	HeartMaxSpeed     float64
	HeartRotationStep float64 // Degrees per frame
	PulseStep         float64 // Scale change per frame
	PulseMin          float64
	PulseMax          float64
	GlowCopies        int
	GlowAlpha         uint8

	PlayerSize    float64
	PlayerSpeed   float64
	PlayerOffsetY float64 // Start distance from the bottom edge

	RequiredScore int
	TimeLimitMs   int64

	BurstSize        int
	ParticleLifetime int
	ParticleSpeed    float64 // Max |dx| and |dy|
	ParticleRadius   float64

	AmbientCircles    int
	CelebrationHearts int

	Palette config.Palette
}

// DefaultConfig returns the standard game rules.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		HeartCount:        5,
		HeartSize:         1,
		HeartMinSpeed:     1,
		HeartMaxSpeed:     3,
		HeartRotationStep: 2,
		PulseStep:         0.02,
		PulseMin:          0.8,
		PulseMax:          1.2,
		GlowCopies:        3,
		GlowAlpha:         50,

		PlayerSize:    40,
		PlayerSpeed:   5,
		PlayerOffsetY: 100,

		RequiredScore: 50,
		TimeLimitMs:   60000,

		BurstSize:        10,
		ParticleLifetime: 30,
		ParticleSpeed:    2,
		ParticleRadius:   2,

		AmbientCircles:    5,
		CelebrationHearts: 20,

		Palette: config.DefaultPalette(),
	}
}

// Center returns the middle of the world.
func (c *Config) Center() (float64, float64) {
	return c.Width / 2, c.Height / 2
}
