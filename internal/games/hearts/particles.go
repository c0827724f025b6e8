package hearts

import (
	"math/rand"

	"github.com/vovakirdan/heart-quest/internal/core"
)

// Particle is a short-lived dot emitted when a heart is collected.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  int // Frames left
	Color core.RGBA
}

// ParticleSystem owns every live particle. Order carries no meaning.
type ParticleSystem struct {
	particles []Particle
	cfg       *Config
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg *Config) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, cfg.BurstSize*cfg.HeartCount),
		cfg:       cfg,
	}
}

// SpawnBurst emits BurstSize particles at pos flying in random directions.
func (s *ParticleSystem) SpawnBurst(pos core.Vec, col core.RGBA, rng *rand.Rand) {
	v := s.cfg.ParticleSpeed
	for i := 0; i < s.cfg.BurstSize; i++ {
		s.particles = append(s.particles, Particle{
			Pos: pos,
			Vel: core.Vec{
				X: -v + rng.Float64()*2*v,
				Y: -v + rng.Float64()*2*v,
			},
			Life:  s.cfg.ParticleLifetime,
			Color: col,
		})
	}
}

// Advance moves every particle one frame and drops the expired ones.
func (s *ParticleSystem) Advance() {
	alive := 0
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 {
			continue
		}
		s.particles[alive] = *p
		alive++
	}
	s.particles = s.particles[:alive]
}

// Draw paints the particles with alpha fading out over their lifetime.
// It is meant for a transparent overlay layer composited afterwards.
func (s *ParticleSystem) Draw(layer *core.Canvas) {
	for _, p := range s.particles {
		alpha := uint8(255 * p.Life / s.cfg.ParticleLifetime)
		layer.FillCircle(p.Pos.X, p.Pos.Y, s.cfg.ParticleRadius, p.Color.WithAlpha(alpha))
	}
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice is owned by the system.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// Clear removes all particles.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}
