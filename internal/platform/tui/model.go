package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heart-quest/internal/core"
	"github.com/vovakirdan/heart-quest/internal/platform"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	session  *platform.Session
	canvas   *core.Canvas
	screen   *core.Screen
	styles   styleCache
	keys     KeyMap
	quitting bool
}

// NewModel creates a model drawing into a width x height cell terminal.
// Each cell shows two canvas pixels stacked vertically.
func NewModel(session *platform.Session, width, height int, worldW, worldH float64) Model {
	return Model{
		session: session,
		canvas:  core.NewCanvas(worldW, worldH, width, 2*height),
		screen:  core.NewScreen(width, height),
		styles:  make(styleCache),
		keys:    DefaultKeyMap(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.session.Quit()
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.session.Keys().Press(a)
	}
	return m, nil
}

// handleResize follows the terminal size. The world keeps its size and the
// running round is not interrupted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.canvas.Resize(msg.Width, 2*msg.Height)
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Logger().Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Tick()
	return m, tickCmd()
}

// saveScreenshot writes the current frame as a PNG.
func (m Model) saveScreenshot() {
	m.session.Render(m.canvas)
	path, err := platform.SaveScreenshot(m.canvas, m.session.Game().ID())
	if err != nil {
		m.session.Logger().Warn("screenshot failed", "error", err)
		return
	}
	m.session.Logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.canvas)
	m.screen.Blit(m.canvas)
	return RenderScreen(m.screen, m.styles)
}

// Run starts the Bubble Tea program for the session.
func Run(session *platform.Session, width, height int, worldW, worldH float64) error {
	model := NewModel(session, width, height, worldW, worldH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
