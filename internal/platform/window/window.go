// Package window is the Ebitengine presenter: a native window the size of
// the game world, with real key state and pixel-exact rendering.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/heart-quest/internal/core"
	"github.com/vovakirdan/heart-quest/internal/platform"
)

// faceHeight is the line height of the bitmap font in pixels.
const faceHeight = 13

// Key bindings for held directions.
var directionKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// KeyReader reports key state. Ebitengine's input functions satisfy it.
type KeyReader struct {
	Pressed     func(ebiten.Key) bool
	JustPressed func(ebiten.Key) bool
}

// liveKeys reads the real keyboard.
var liveKeys = KeyReader{
	Pressed:     ebiten.IsKeyPressed,
	JustPressed: inpututil.IsKeyJustPressed,
}

// Frame builds this tick's input from the key state. Directions are held
// while their key is down; restart and quit fire once per press.
func (r KeyReader) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, keys := range directionKeys {
		for _, k := range keys {
			if r.Pressed(k) {
				in.Set(a)
				break
			}
		}
	}
	if r.JustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if r.JustPressed(ebiten.KeyEscape) || r.JustPressed(ebiten.KeyQ) {
		in.Set(core.ActionQuit)
	}
	return in
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session *platform.Session
	keys    KeyReader
	canvas  *core.Canvas
	frame   *ebiten.Image
	face    text.Face
}

// New creates the window presenter for a world of worldW x worldH.
func New(session *platform.Session, worldW, worldH float64) *Game {
	w, h := int(worldW), int(worldH)
	return &Game{
		session: session,
		keys:    liveKeys,
		canvas:  core.NewCanvas(worldW, worldH, w, h),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update steps the game once per tick.
func (g *Game) Update() error {
	in := g.keys.Frame()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshot()
	}
	g.session.Step(in)
	return nil
}

// Draw copies the canvas into the window and draws the text runs on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(g.canvas)

	if g.frame == nil {
		g.frame = ebiten.NewImage(g.canvas.Width(), g.canvas.Height())
	}
	g.frame.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.frame, nil)

	for _, t := range g.canvas.Texts() {
		g.drawText(screen, t)
	}
}

func (g *Game) drawText(screen *ebiten.Image, t core.TextRun) {
	k := t.Size / faceHeight
	x, y := t.Pos.X, t.Pos.Y
	if t.Anchor == core.AnchorCenter {
		w, h := text.Measure(t.Text, g.face, faceHeight)
		x -= w * k / 2
		y -= h * k / 2
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(t.Color.NRGBA())
	text.Draw(screen, t.Text, g.face, op)
}

// Layout keeps the logical screen at the world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}

func (g *Game) screenshot() {
	path, err := platform.SaveScreenshot(g.canvas, g.session.Game().ID())
	if err != nil {
		g.session.Logger().Warn("screenshot failed", "error", err)
		return
	}
	g.session.Logger().Info("screenshot saved", "path", path)
}

// Run opens the window and plays until it is closed or quit is pressed.
func Run(session *platform.Session, title string, worldW, worldH float64) error {
	ebiten.SetWindowSize(int(worldW), int(worldH))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(core.TickRate)

	g := New(session, worldW, worldH)
	session.Start()
	err := ebiten.RunGame(g)
	session.Quit()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
