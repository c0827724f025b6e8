// Package hearts implements Valentine's Heart Quest.
// The player steers a winged cupid to collect falling hearts worth 1 to 3
// points before the timer runs out. Reaching the required score starts an
// endless celebration; running out of time shows a game over banner.
package hearts

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/heart-quest/internal/config"
	"github.com/vovakirdan/heart-quest/internal/core"
	"github.com/vovakirdan/heart-quest/internal/registry"
)

// HUD layout
const (
	hudLarge   = 36 // Score, timer and banner text size
	hudSmall   = 24 // Instruction text size
	bannerLift = 100
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the session has ended.
func (p Phase) Over() bool {
	return p != PhasePlaying
}

// Game implements the heart collecting game logic.
type Game struct {
	cfg Config

	player      *Player
	hearts      []*Heart
	particles   *ParticleSystem
	celebration *Celebration // Non-nil once won

	phase       Phase
	clock       core.Clock
	startMs     int64
	remainingMs int64
	tickCount   int

	rng     *rand.Rand // Simulation randomness
	fx      *rand.Rand // Presentation-only randomness
	overlay *core.Canvas
	runtime core.RuntimeConfig
}

// New creates a game with the standard rules.
func New() *Game {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a game with custom rules.
func NewWithConfig(cfg Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hearts"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Valentine's Heart Quest"
}

// WorldSize returns the playfield dimensions.
func (g *Game) WorldSize() (float64, float64) {
	return g.cfg.Width, g.cfg.Height
}

// SetPalette replaces the drawing colors. Entities share the game's rules,
// so the change applies from the next render.
func (g *Game) SetPalette(p config.Palette) {
	g.cfg.Palette = p
}

// Config returns the rules the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Reset starts a fresh session. The clock starts counting now.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.clock = rc.Clock
	if g.clock == nil {
		g.clock = core.NewSystemClock()
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.fx = rand.New(rand.NewSource(rc.Seed ^ 0x5eed))

	g.player = NewPlayer(&g.cfg)
	g.hearts = make([]*Heart, g.cfg.HeartCount)
	for i := range g.hearts {
		g.hearts[i] = NewHeart(&g.cfg, g.rng)
	}
	g.particles = NewParticleSystem(&g.cfg)
	g.celebration = nil

	g.phase = PhasePlaying
	g.startMs = g.clock.Millis()
	g.remainingMs = g.cfg.TimeLimitMs
	g.tickCount = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++
	g.remainingMs = max(0, g.cfg.TimeLimitMs-(g.clock.Millis()-g.startMs))

	if g.phase == PhasePlaying {
		g.player.Move(in)
		for _, h := range g.hearts {
			h.Move(g.rng)
			if h.CollidesWith(g.player) {
				g.player.Collected += h.Worth
				g.particles.SpawnBurst(h.Pos, h.Color(), g.rng)
				h.Reset(g.rng)
			}
			h.Advance()
		}
		g.particles.Advance()

		switch {
		case g.player.Collected >= g.cfg.RequiredScore:
			g.phase = PhaseWon
			g.celebration = NewCelebration(&g.cfg, g.rng)
		case g.remainingMs <= 0:
			g.phase = PhaseLost
		}
	}

	if g.celebration != nil {
		g.celebration.Advance()
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current frame onto dst.
func (g *Game) Render(dst *core.Canvas) {
	pal := g.cfg.Palette
	w, h := g.cfg.Width, g.cfg.Height

	for y := 0; y < int(h); y++ {
		col := core.Lerp(pal.LightPink, pal.DarkerPink, float64(y)/h)
		dst.HLine(0, w, float64(y), col)
	}

	if g.phase == PhasePlaying {
		g.renderAmbient(dst)
		g.player.Render(dst)
		for _, heart := range g.hearts {
			heart.Render(dst, g.fx)
		}
		g.renderParticles(dst)
		g.renderHUD(dst)
		return
	}

	cx, cy := g.cfg.Center()
	if g.phase == PhaseWon {
		g.celebration.Render(dst)
		dst.TextCentered(cx, cy-bannerLift, "You Win! Happy Valentine's Day!", pal.DarkPurple, hudLarge)
	} else {
		dst.TextCentered(cx, cy-bannerLift, "Game Over - Try Again!", pal.Red, hudLarge)
	}
	dst.TextCentered(cx, cy-bannerLift+hudLarge, "Press R to play again", pal.HUD, hudSmall)
}

// renderAmbient scatters faint circles at fresh random spots every frame.
func (g *Game) renderAmbient(dst *core.Canvas) {
	col := g.cfg.Palette.DarkerPink.WithAlpha(50)
	for i := 0; i < g.cfg.AmbientCircles; i++ {
		x := float64(g.fx.Intn(int(g.cfg.Width) + 1))
		y := float64(g.fx.Intn(int(g.cfg.Height) + 1))
		r := float64(5 + g.fx.Intn(11))
		dst.FillCircle(x, y, r, col)
	}
}

// renderParticles draws the particles on a transparent overlay layer and
// composites it, so each particle fades against the finished scene.
func (g *Game) renderParticles(dst *core.Canvas) {
	if g.overlay == nil || !g.overlay.SameGeometry(dst) {
		g.overlay = dst.NewLayer()
	}
	g.overlay.Clear(core.Transparent)
	g.particles.Draw(g.overlay)
	dst.Composite(g.overlay)
}

func (g *Game) renderHUD(dst *core.Canvas) {
	pal := g.cfg.Palette
	dst.Text(10, 10, fmt.Sprintf("Hearts: %d/%d", g.player.Collected, g.cfg.RequiredScore), pal.HUD, hudLarge)
	dst.Text(g.cfg.Width-150, 10, fmt.Sprintf("Time: %ds", g.remainingMs/1000), pal.HUD, hudLarge)
	dst.Text(10, 40, "Collect hearts to score points!", pal.HUD, hudSmall)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.phase.Over(),
		Won:      g.phase == PhaseWon,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the points collected so far.
func (g *Game) Score() int {
	if g.player == nil {
		return 0
	}
	return g.player.Collected
}

// RemainingMs returns the time left, clamped at zero.
func (g *Game) RemainingMs() int64 {
	return g.remainingMs
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Hearts returns the collectibles. The slice is owned by the game.
func (g *Game) Hearts() []*Heart {
	return g.hearts
}

// Particles returns the particle system.
func (g *Game) Particles() *ParticleSystem {
	return g.particles
}

// Celebration returns the win animation, or nil before a win.
func (g *Game) Celebration() *Celebration {
	return g.celebration
}

// Seed returns the seed the current session was started with.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Ticks returns the number of frames stepped since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

func init() {
	registry.Register("hearts", func() registry.Game { return New() })
}
