// Package platform holds the pieces shared by every presenter: the session
// that owns a running game, its held-key state and its logger.
package platform

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heart-quest/internal/core"
	"github.com/vovakirdan/heart-quest/internal/registry"
)

// NewLogger creates the application logger writing to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "heartquest",
	})
}

// Session runs one game for a presenter. Presenters feed it key events,
// call Tick once per frame and Render whenever they draw.
type Session struct {
	game     registry.Game
	keys     *core.KeyState
	logger   *log.Logger
	config   core.RuntimeConfig
	state    core.GameState
	startMs  int64
	rounds   int
	NextSeed func() int64 // Seed source for restarts
}

// NewSession creates a session. A nil clock in cfg is replaced by a
// system clock shared by the session and the game.
func NewSession(game registry.Game, cfg core.RuntimeConfig, holdFrames int, logger *log.Logger) *Session {
	if cfg.Clock == nil {
		cfg.Clock = core.NewSystemClock()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = NewLogger(io.Discard)
	}
	return &Session{
		game:   game,
		keys:   core.NewKeyState(holdFrames),
		logger: logger,
		config: cfg,
		NextSeed: func() int64 {
			return time.Now().UnixNano()
		},
	}
}

// Start resets the game and begins the first round.
func (s *Session) Start() {
	s.reset()
	s.logger.Info("game started",
		"game", s.game.ID(),
		"seed", s.config.Seed,
		"fps", core.TickRate,
	)
}

func (s *Session) reset() {
	s.game.Reset(s.config)
	s.state = s.game.State()
	s.startMs = s.config.Clock.Millis()
	s.keys.Reset()
	s.rounds++
}

// Keys returns the held-key tracker presenters feed with key events.
func (s *Session) Keys() *core.KeyState {
	return s.keys
}

// Logger returns the session logger.
func (s *Session) Logger() *log.Logger {
	return s.logger
}

// Game returns the running game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Config returns the runtime config of the current round.
func (s *Session) Config() core.RuntimeConfig {
	return s.config
}

// State returns the game state after the latest step.
func (s *Session) State() core.GameState {
	return s.state
}

// Rounds returns how many rounds have been started.
func (s *Session) Rounds() int {
	return s.rounds
}

// Tick steps the game with the keys held this frame.
func (s *Session) Tick() core.StepResult {
	return s.Step(s.keys.Frame())
}

// Step advances the game by one frame with the given input.
// A restart request is honored only when pressed after the round is over.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && s.state.GameOver {
		s.Restart()
		return core.StepResult{State: s.state}
	}

	wasOver := s.state.GameOver
	res := s.game.Step(in)
	s.state = res.State

	if s.state.GameOver && !wasOver {
		// Keys held from play must not carry a restart into the result screen.
		s.keys.Reset()
		result := "lose"
		if s.state.Won {
			result = "win"
		}
		s.logger.Info("game over",
			"result", result,
			"score", s.state.Score,
			"elapsed", s.Elapsed(),
		)
	}
	return res
}

// Render draws the game onto dst after clearing it.
func (s *Session) Render(dst *core.Canvas) {
	dst.Clear(core.Transparent)
	s.game.Render(dst)
}

// Restart begins a new round with a fresh seed.
func (s *Session) Restart() {
	s.config.Seed = s.NextSeed()
	s.reset()
	s.logger.Info("game restarted", "round", s.rounds, "seed", s.config.Seed)
}

// Elapsed returns the time spent in the current round.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.config.Clock.Millis()-s.startMs) * time.Millisecond
}

// Quit logs the end of the session.
func (s *Session) Quit() {
	s.logger.Info("quit", "score", s.state.Score, "rounds", s.rounds)
}
