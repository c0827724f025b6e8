package hearts

import (
	"math/rand"

	"github.com/vovakirdan/heart-quest/internal/core"
)

// Celebration layout
const (
	coupleSpread   = 100 // Initial distance of each character from the center
	coupleStop     = 20  // Characters stop this close to the center
	coupleHeartGap = 100 // Separation below which the shared heart shows
	headRadius     = 30
	shareHeartSize = 20
	floatWrapY     = 20 // Hearts wrap once they pass this far above the top
)

// floatingHeart is a decorative heart drifting upward forever.
type floatingHeart struct {
	Pos   core.Vec
	Size  float64
	Speed float64
}

// Celebration is the endless animation shown after a win: two characters
// walk toward each other over a field of floating hearts.
type Celebration struct {
	BoyX  float64
	GirlX float64
	Y     float64

	hearts []floatingHeart
	frame  int
	cfg    *Config
}

// NewCelebration creates the animation with its characters apart and the
// background hearts scattered over the screen.
func NewCelebration(cfg *Config, rng *rand.Rand) *Celebration {
	cx, cy := cfg.Center()
	c := &Celebration{
		BoyX:   cx - coupleSpread,
		GirlX:  cx + coupleSpread,
		Y:      cy,
		hearts: make([]floatingHeart, cfg.CelebrationHearts),
		cfg:    cfg,
	}
	for i := range c.hearts {
		c.hearts[i] = floatingHeart{
			Pos:   core.V(float64(rng.Intn(int(cfg.Width)+1)), float64(rng.Intn(int(cfg.Height)+1))),
			Size:  float64(5 + rng.Intn(11)),
			Speed: 1 + rng.Float64()*2,
		}
	}
	return c
}

// Advance moves the animation one frame. It never finishes.
func (c *Celebration) Advance() {
	c.frame++
	for i := range c.hearts {
		h := &c.hearts[i]
		h.Pos.Y -= h.Speed
		if h.Pos.Y < -floatWrapY {
			h.Pos.Y = c.cfg.Height + floatWrapY
		}
	}

	cx, _ := c.cfg.Center()
	if c.BoyX < cx-coupleStop {
		c.BoyX++
	}
	if c.GirlX > cx+coupleStop {
		c.GirlX--
	}
}

// Frames returns how many frames the animation has run.
func (c *Celebration) Frames() int {
	return c.frame
}

// Together reports whether the characters are close enough to share a heart.
func (c *Celebration) Together() bool {
	return core.Abs(int(c.GirlX-c.BoyX)) < coupleHeartGap
}

// Render draws the background hearts, both characters and, once they are
// close, the heart between them.
func (c *Celebration) Render(dst *core.Canvas) {
	pal := c.cfg.Palette
	for _, h := range c.hearts {
		dst.FillPolygon(HeartOutline(h.Pos, h.Size/16, 0, 1), pal.DarkerPink)
	}

	y := c.Y
	dst.FillCircle(c.BoyX, y, headRadius, pal.BoyHead)
	dst.FillRect(c.BoyX-20, y+30, 40, 50, pal.BoyBody)

	dst.FillCircle(c.GirlX, y, headRadius, pal.GirlHead)
	dst.FillPolygon([]core.Vec{
		{X: c.GirlX - 20, Y: y + 30},
		{X: c.GirlX + 20, Y: y + 30},
		{X: c.GirlX + 30, Y: y + 80},
		{X: c.GirlX - 30, Y: y + 80},
	}, pal.GirlDress)

	if c.Together() {
		cx, _ := c.cfg.Center()
		dst.FillPolygon(HeartOutline(core.V(cx, y-40), shareHeartSize/16.0, 0, 1), pal.Red)
	}
}
