package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/heart-quest/internal/audio"
	"github.com/vovakirdan/heart-quest/internal/config"
	"github.com/vovakirdan/heart-quest/internal/core"
	"github.com/vovakirdan/heart-quest/internal/platform"
	"github.com/vovakirdan/heart-quest/internal/platform/tcellui"
	"github.com/vovakirdan/heart-quest/internal/platform/tui"
	"github.com/vovakirdan/heart-quest/internal/platform/window"
	"github.com/vovakirdan/heart-quest/internal/registry"
)

// Presenter backends
const (
	backendTUI    = "tui"
	backendTcell  = "tcell"
	backendWindow = "window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a round of Valentine's Heart Quest.

Controls:
  Arrows/WASD  - Move
  R            - Play again (after the round ends)
  Ctrl+S       - Save a screenshot (F12 in the window backend)
  Q/Esc        - Quit

Examples:
  heartquest play
  heartquest play --backend tcell
  heartquest play --game hearts --seed 42
  heartquest play --backend window --log-file heartquest.log
  heartquest play --config ./my-display.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	switch flagBackend {
	case backendTUI, backendTcell, backendWindow:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", flagBackend, backendTUI, backendTcell, backendWindow)
	}

	display, err := config.LoadDisplay(flagConfig)
	if err != nil {
		return err
	}
	palette, err := display.Palette.Parse()
	if err != nil {
		return err
	}
	game, err := newGame(flagGame, palette)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagBackend)
	if err != nil {
		return err
	}
	defer closeLog()

	session := platform.NewSession(game, core.RuntimeConfig{Seed: flagSeed}, display.KeyHoldFrames, logger)
	logger.Info("starting", "game", game.ID(), "backend", flagBackend, "seed", session.Config().Seed)

	if !flagMute {
		mixer := audio.NewMixer()
		if err := mixer.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer mixer.Close()
		}
	}

	worldW, worldH := game.WorldSize()
	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return tcellui.Run(ctx, session, worldW, worldH)
	case backendWindow:
		return window.Run(session, game.Title(), worldW, worldH)
	default:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.Run(session, width, height, worldW, worldH)
	}
}

// newGame creates a registered game and applies the display palette.
func newGame(id string, palette config.Palette) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if t, ok := game.(registry.Themeable); ok {
		t.SetPalette(palette)
	}
	return game, nil
}

// newLogger picks the log destination. Terminal backends own the screen, so
// without a log file their logs are discarded; the window backend logs to
// stderr.
func newLogger(path, backend string) (*log.Logger, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logger := platform.NewLogger(f)
		logger.SetLevel(log.DebugLevel)
		return logger, func() { f.Close() }, nil
	}

	var w io.Writer = io.Discard
	if backend == backendWindow {
		w = os.Stderr
	}
	return platform.NewLogger(w), func() {}, nil
}
