package hearts

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/heart-quest/internal/core"
)

type disc struct {
	c core.Vec
	r float64
}

func (d disc) Center() core.Vec { return d.c }
func (d disc) Radius() float64  { return d.r }

func TestHeartResetInvariants(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(7))
	h := NewHeart(&cfg, rng)

	for i := 0; i < 1000; i++ {
		h.Angle = 90
		h.Reset(rng)
		if h.Pos.X < h.Size || h.Pos.X > cfg.Width-h.Size {
			t.Fatalf("x = %v out of [%v, %v]", h.Pos.X, h.Size, cfg.Width-h.Size)
		}
		if h.Pos.Y != -h.Size {
			t.Fatalf("y = %v, want %v", h.Pos.Y, -h.Size)
		}
		if h.Speed < cfg.HeartMinSpeed || h.Speed > cfg.HeartMaxSpeed {
			t.Fatalf("speed = %v out of range", h.Speed)
		}
		if h.Worth < 1 || h.Worth > 3 {
			t.Fatalf("worth = %d", h.Worth)
		}
		if h.Angle != 0 {
			t.Fatalf("angle = %v after reset", h.Angle)
		}
	}
}

func TestHeartWorthDistribution(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(99))
	h := NewHeart(&cfg, rng)

	const n = 10000
	counts := map[int]int{}
	for i := 0; i < n; i++ {
		h.Reset(rng)
		counts[h.Worth]++
	}
	if p := float64(counts[1]) / n; p < 0.55 || p > 0.65 {
		t.Errorf("worth 1 frequency = %.3f, want about 0.6", p)
	}
	for _, w := range []int{2, 3} {
		if p := float64(counts[w]) / n; p < 0.15 || p > 0.25 {
			t.Errorf("worth %d frequency = %.3f, want about 0.2", w, p)
		}
	}
}

func TestHeartMove(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name      string
		y, speed  float64
		wantY     float64
		respawned bool
	}{
		{"falls", 100, 2.5, 102.5, false},
		{"exactly at limit stays", 599, 2, 601, false},
		{"past limit respawns", 600, 2, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeart(&cfg, rng)
			h.Pos.Y = tt.y
			h.Speed = tt.speed
			h.Move(rng)
			if h.Pos.Y != tt.wantY {
				t.Errorf("y = %v, want %v", h.Pos.Y, tt.wantY)
			}
			if tt.respawned && (h.Speed < 1 || h.Speed > 3) {
				t.Errorf("respawned speed = %v", h.Speed)
			}
		})
	}
}

func TestHeartAdvance(t *testing.T) {
	cfg := DefaultConfig()
	h := NewHeart(&cfg, rand.New(rand.NewSource(3)))

	lo := cfg.PulseMin - cfg.PulseStep - eps
	hi := cfg.PulseMax + cfg.PulseStep + eps
	sawHigh, sawLow := false, false
	for i := 1; i <= 500; i++ {
		h.Advance()
		if h.Angle != float64(2*i) {
			t.Fatalf("frame %d: angle = %v", i, h.Angle)
		}
		if h.Scale < lo || h.Scale > hi {
			t.Fatalf("frame %d: scale = %v escaped pulse range", i, h.Scale)
		}
		sawHigh = sawHigh || h.Scale > 1.15
		sawLow = sawLow || h.Scale < 0.85
	}
	if !sawHigh || !sawLow {
		t.Error("pulse never reached both extremes")
	}
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name string
		a, b disc
		want bool
	}{
		{"overlapping", disc{core.V(0, 0), 40}, disc{core.V(40.9, 0), 1}, true},
		{"touching is not a hit", disc{core.V(0, 0), 40}, disc{core.V(41, 0), 1}, false},
		{"apart", disc{core.V(0, 0), 40}, disc{core.V(30, 30), 1}, false},
		{"diagonal", disc{core.V(10, 10), 5}, disc{core.V(13, 14), 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(tt.a, tt.b); got != tt.want {
				t.Errorf("Collide(a, b) = %v, want %v", got, tt.want)
			}
			if Collide(tt.a, tt.b) != Collide(tt.b, tt.a) {
				t.Error("collision is not symmetric")
			}
		})
	}
}

func TestHeartColor(t *testing.T) {
	cfg := DefaultConfig()
	h := NewHeart(&cfg, rand.New(rand.NewSource(1)))
	for worth, want := range map[int]core.RGBA{1: cfg.Palette.Red, 2: cfg.Palette.Gold, 3: cfg.Palette.Gold} {
		h.Worth = worth
		if got := h.Color(); got != want {
			t.Errorf("worth %d: color = %v, want %v", worth, got, want)
		}
	}
}

func TestHeartRenderPaintsCenter(t *testing.T) {
	cfg := DefaultConfig()
	h := NewHeart(&cfg, rand.New(rand.NewSource(1)))
	h.Pos = core.V(400, 300)
	h.Worth = 1

	c := core.NewCanvas(cfg.Width, cfg.Height, 80, 60)
	h.Render(c, rand.New(rand.NewSource(2)))
	// The heart is a few pixels wide here, so its center pixel is only
	// partly covered and keeps the heart's hue at reduced alpha.
	if got := c.At(40, 30); got.A == 0 || got.R < 250 || got.G != 0 || got.B != 0 {
		t.Errorf("pixel under heart = %v, want red", got)
	}
	if got := c.At(0, 0); got != core.Transparent {
		t.Errorf("far pixel = %v, want transparent", got)
	}
}
