package hearts

import "github.com/vovakirdan/heart-quest/internal/core"

// Wing drawing constants
const (
	wingLayers = 30 // Overlapping ellipses per wing
	wingFade   = 8  // Alpha lost per layer
	wingW      = 30
	wingH      = 40
)

// Player is the keyboard-driven cupid.
type Player struct {
	Pos       core.Vec
	Size      float64
	Speed     float64
	Collected int // Score; never decreases during play

	cfg *Config
}

// NewPlayer creates the player centered horizontally near the bottom.
func NewPlayer(cfg *Config) *Player {
	return &Player{
		Pos:   core.V(cfg.Width/2, cfg.Height-cfg.PlayerOffsetY),
		Size:  cfg.PlayerSize,
		Speed: cfg.PlayerSpeed,
		cfg:   cfg,
	}
}

// Move applies the held directions. Opposite directions cancel out and the
// body always stays fully inside the world.
func (p *Player) Move(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		p.Pos.X -= p.Speed
	}
	if in.Has(core.ActionRight) {
		p.Pos.X += p.Speed
	}
	if in.Has(core.ActionUp) {
		p.Pos.Y -= p.Speed
	}
	if in.Has(core.ActionDown) {
		p.Pos.Y += p.Speed
	}
	p.Pos.X = core.ClampF(p.Pos.X, p.Size, p.cfg.Width-p.Size)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.Size, p.cfg.Height-p.Size)
}

// Center implements Body.
func (p *Player) Center() core.Vec { return p.Pos }

// Radius implements Body.
func (p *Player) Radius() float64 { return p.Size }

// CollidesWith reports whether the player touches another body.
func (p *Player) CollidesWith(other Body) bool {
	return Collide(p, other)
}

// Render draws the body and two wings built from fading ellipse layers.
func (p *Player) Render(dst *core.Canvas) {
	pal := p.cfg.Palette
	dst.FillCircle(p.Pos.X, p.Pos.Y, p.Size, pal.Pink)

	x, y := p.Pos.X, p.Pos.Y
	for i := 0; i < wingLayers; i++ {
		col := pal.White.WithAlpha(uint8(255 - i*wingFade))
		shift := float64(i / 2)
		dst.FillEllipseRect(x-40+shift, y-20, wingW, wingH, col)
		dst.FillEllipseRect(x+10-shift, y-20, wingW, wingH, col)
	}
}
