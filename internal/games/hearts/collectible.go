package hearts

import (
	"math/rand"

	"github.com/vovakirdan/heart-quest/internal/core"
)

// Body is anything with a circular collision bound.
type Body interface {
	Center() core.Vec
	Radius() float64
}

// Collide reports whether two bodies overlap: the distance between their
// centers is less than the sum of their radii. Collide(a, b) == Collide(b, a).
func Collide(a, b Body) bool {
	return core.Dist(a.Center(), b.Center()) < a.Radius()+b.Radius()
}

// Heart is a falling collectible. Hearts are never destroyed: one that
// leaves the bottom edge or is collected is reset to the top instead.
type Heart struct {
	Pos   core.Vec
	Size  float64
	Speed float64 // Fall speed per frame
	Worth int     // Points awarded on collection

	Angle    float64 // Rotation in degrees, grows every frame
	Scale    float64 // Pulse factor in [PulseMin, PulseMax]
	scaleDir float64

	cfg *Config
}

// NewHeart creates a heart at a random spawn point above the screen.
func NewHeart(cfg *Config, rng *rand.Rand) *Heart {
	h := &Heart{
		Size:     cfg.HeartSize,
		Scale:    1,
		scaleDir: cfg.PulseStep,
		cfg:      cfg,
	}
	h.Reset(rng)
	return h
}

// Reset respawns the heart just above the top edge with a fresh x position,
// speed and worth. The pulse phase carries over; rotation restarts at 0.
func (h *Heart) Reset(rng *rand.Rand) {
	h.Pos.X = h.Size + rng.Float64()*(h.cfg.Width-2*h.Size)
	h.Pos.Y = -h.Size
	h.Speed = h.cfg.HeartMinSpeed + rng.Float64()*(h.cfg.HeartMaxSpeed-h.cfg.HeartMinSpeed)
	h.Worth = WorthTable[rng.Intn(len(WorthTable))]
	h.Angle = 0
}

// Move lets the heart fall one frame, respawning it once it has passed
// below the bottom edge.
func (h *Heart) Move(rng *rand.Rand) {
	h.Pos.Y += h.Speed
	if h.Pos.Y > h.cfg.Height+h.Size {
		h.Reset(rng)
	}
}

// Advance steps the spin and pulse animation by one frame.
func (h *Heart) Advance() {
	h.Angle += h.cfg.HeartRotationStep
	h.Scale += h.scaleDir
	if h.Scale > h.cfg.PulseMax || h.Scale < h.cfg.PulseMin {
		h.scaleDir = -h.scaleDir
	}
}

// Center implements Body.
func (h *Heart) Center() core.Vec { return h.Pos }

// Radius implements Body.
func (h *Heart) Radius() float64 { return h.Size }

// CollidesWith reports whether the heart touches another body.
func (h *Heart) CollidesWith(other Body) bool {
	return Collide(h, other)
}

// Color returns gold for valuable hearts and red for common ones.
func (h *Heart) Color() core.RGBA {
	if h.Worth > 1 {
		return h.cfg.Palette.Gold
	}
	return h.cfg.Palette.Red
}

// Outline returns the heart polygon for the current animation state.
func (h *Heart) Outline() []core.Vec {
	return HeartOutline(h.Pos, h.Size, h.Angle, h.Scale)
}

// Render draws the heart and its glow. The glow copies wobble each vertex
// by up to one unit using jitter, which only affects presentation.
func (h *Heart) Render(dst *core.Canvas, jitter *rand.Rand) {
	pts := h.Outline()
	if len(pts) < 3 {
		return
	}
	col := h.Color()
	dst.FillPolygon(pts, col)

	glow := make([]core.Vec, len(pts))
	glowCol := col.WithAlpha(h.cfg.GlowAlpha)
	for i := 0; i < h.cfg.GlowCopies; i++ {
		for j, p := range pts {
			glow[j] = core.Vec{
				X: p.X + float64(jitter.Intn(3)-1),
				Y: p.Y + float64(jitter.Intn(3)-1),
			}
		}
		dst.FillPolygon(glow, glowCol)
	}
}
