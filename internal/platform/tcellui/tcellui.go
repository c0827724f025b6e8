// Package tcellui is the tcell presenter. It owns the terminal directly and
// runs the frame loop from a ticker, with key events read by a poll goroutine.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/heart-quest/internal/core"
	"github.com/vovakirdan/heart-quest/internal/platform"
)

// Presenter draws a session onto a tcell screen.
type Presenter struct {
	screen  tcell.Screen
	session *platform.Session
	canvas  *core.Canvas
	cells   *core.Screen
	styles  map[[2]core.RGBA]tcell.Style
}

// New creates a presenter for an initialized screen.
func New(screen tcell.Screen, session *platform.Session, worldW, worldH float64) *Presenter {
	w, h := screen.Size()
	return &Presenter{
		screen:  screen,
		session: session,
		canvas:  core.NewCanvas(worldW, worldH, w, 2*h),
		cells:   core.NewScreen(w, h),
		styles:  make(map[[2]core.RGBA]tcell.Style),
	}
}

// Run opens the terminal, plays until quit or ctx is done, and restores
// the terminal.
func Run(ctx context.Context, session *platform.Session, worldW, worldH float64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	New(screen, session, worldW, worldH).Loop(ctx)
	return nil
}

// Loop runs the frame loop until quit or ctx is done.
func (p *Presenter) Loop(ctx context.Context) {
	p.session.Start()

	ticker := time.NewTicker(time.Second / core.TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			p.session.Quit()
			return
		case ev := <-events:
			if !p.HandleEvent(ev) {
				p.session.Quit()
				return
			}
		case <-ticker.C:
			p.session.Tick()
			p.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false on quit.
func (p *Presenter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := MapKey(ev.Key(), ev.Rune())
		switch a {
		case core.ActionQuit:
			return false
		case core.ActionNone:
		default:
			p.session.Keys().Press(a)
		}

	case *tcell.EventResize:
		p.Resize()
	}
	return true
}

// MapKey translates a tcell key to a game action.
func MapKey(k tcell.Key, r rune) core.Action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return core.ActionQuit
		case 'a', 'A':
			return core.ActionLeft
		case 'd', 'D':
			return core.ActionRight
		case 'w', 'W':
			return core.ActionUp
		case 's', 'S':
			return core.ActionDown
		case 'r', 'R':
			return core.ActionRestart
		}
	}
	return core.ActionNone
}

// Resize follows the terminal size without restarting the round.
func (p *Presenter) Resize() {
	w, h := p.screen.Size()
	p.canvas.Resize(w, 2*h)
	p.cells.Resize(w, h)
	p.screen.Sync()
	p.session.Logger().Debug("terminal resized", "cols", w, "rows", h)
}

// Draw renders the current frame to the terminal.
func (p *Presenter) Draw() {
	p.session.Render(p.canvas)
	p.cells.Blit(p.canvas)

	for y := 0; y < p.cells.Height(); y++ {
		for x := 0; x < p.cells.Width(); x++ {
			c := p.cells.GetCell(x, y)
			p.screen.SetContent(x, y, c.Rune, nil, p.style(c.Fg, c.Bg))
		}
	}
	p.screen.Show()
}

func (p *Presenter) style(fg, bg core.RGBA) tcell.Style {
	key := [2]core.RGBA{fg, bg}
	if st, ok := p.styles[key]; ok {
		return st
	}
	st := tcell.StyleDefault.
		Foreground(rgb(fg)).
		Background(rgb(bg))
	p.styles[key] = st
	return st
}

func rgb(c core.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
