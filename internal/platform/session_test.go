package platform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/heart-quest/internal/core"
	"github.com/vovakirdan/heart-quest/internal/games/hearts"
)

func newTestSession(t *testing.T) (*Session, *hearts.Game, *core.ManualClock, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	clock := &core.ManualClock{}
	g := hearts.New()
	s := NewSession(g, core.RuntimeConfig{Seed: 7, Clock: clock}, 4, NewLogger(&buf))
	next := int64(100)
	s.NextSeed = func() int64 {
		next++
		return next
	}
	s.Start()
	return s, g, clock, &buf
}

func frameOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestSessionStartLogs(t *testing.T) {
	s, _, _, buf := newTestSession(t)
	if s.Rounds() != 1 {
		t.Errorf("rounds = %d, want 1", s.Rounds())
	}
	out := buf.String()
	for _, want := range []string{"game started", "game=hearts", "seed=7", "fps=60"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestSessionTickUsesHeldKeys(t *testing.T) {
	s, g, _, _ := newTestSession(t)
	start := g.Player().Pos

	s.Keys().Press(core.ActionLeft)
	for i := 0; i < 4; i++ {
		s.Tick()
	}
	if got, want := g.Player().Pos.X, start.X-20; got != want {
		t.Errorf("x after hold = %v, want %v", got, want)
	}

	s.Tick()
	if got, want := g.Player().Pos.X, start.X-20; got != want {
		t.Errorf("x after release = %v, want %v", got, want)
	}
}

func TestSessionLogsGameOverOnce(t *testing.T) {
	s, _, clock, buf := newTestSession(t)

	clock.Advance(60000)
	res := s.Step(frameOf())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("state = %+v, want lost", res.State)
	}
	s.Step(frameOf())
	s.Step(frameOf())

	out := buf.String()
	if n := strings.Count(out, "game over"); n != 1 {
		t.Errorf("logged game over %d times:\n%s", n, out)
	}
	if !strings.Contains(out, "result=lose") {
		t.Errorf("log missing result: %s", out)
	}
}

func TestSessionRestart(t *testing.T) {
	s, g, clock, buf := newTestSession(t)

	s.Step(frameOf(core.ActionRestart))
	if s.Rounds() != 1 {
		t.Fatalf("restart honored while playing")
	}

	clock.Advance(60000)
	s.Step(frameOf())
	clock.Advance(500)
	s.Step(frameOf(core.ActionRestart))

	if s.Rounds() != 2 {
		t.Fatalf("rounds = %d, want 2", s.Rounds())
	}
	if s.State().GameOver || g.Phase() != hearts.PhasePlaying {
		t.Errorf("state after restart = %+v phase %v", s.State(), g.Phase())
	}
	if g.Seed() != 101 || s.Config().Seed != 101 {
		t.Errorf("seed after restart = %d", g.Seed())
	}
	if g.RemainingMs() != 60000 {
		t.Errorf("timer not restarted: %d", g.RemainingMs())
	}
	if s.Elapsed() != 0 {
		t.Errorf("elapsed = %v, want 0", s.Elapsed())
	}
	if !strings.Contains(buf.String(), "game restarted") {
		t.Errorf("restart not logged")
	}
}

func TestSessionRenderClears(t *testing.T) {
	s, _, _, _ := newTestSession(t)
	c := core.NewCanvas(800, 600, 40, 30)
	c.Text(0, 0, "stale", core.RGB(0, 0, 0), 10)

	s.Render(c)
	for _, run := range c.Texts() {
		if run.Text == "stale" {
			t.Fatal("canvas not cleared before render")
		}
	}
	if len(c.Texts()) == 0 {
		t.Error("nothing rendered")
	}
}

func TestSessionQuitLogs(t *testing.T) {
	s, _, _, buf := newTestSession(t)
	s.Quit()
	if !strings.Contains(buf.String(), "quit") {
		t.Errorf("quit not logged: %s", buf.String())
	}
}

func TestSessionRestartNeedsPressAfterGameOver(t *testing.T) {
	s, _, clock, _ := newTestSession(t)

	clock.Advance(59999)
	s.Keys().Press(core.ActionRestart)
	s.Tick()
	clock.Advance(1)
	s.Tick()
	if !s.State().GameOver {
		t.Fatalf("state = %+v, want game over", s.State())
	}

	// The hold from the earlier press has frames left but must not restart.
	for i := 0; i < 4; i++ {
		s.Tick()
	}
	if s.Rounds() != 1 || !s.State().GameOver {
		t.Fatalf("rounds = %d over = %v, result screen skipped", s.Rounds(), s.State().GameOver)
	}

	s.Keys().Press(core.ActionRestart)
	s.Tick()
	if s.Rounds() != 2 {
		t.Errorf("rounds = %d after a fresh press, want 2", s.Rounds())
	}
}
