package core

import "math"

// HalfBlock is the glyph used to show two vertically stacked pixels in one
// terminal cell: the foreground paints the top half, the background the bottom.
const HalfBlock = '▀'

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	Fg   RGBA
	Bg   RGBA
}

// Screen is a 2D cell buffer for terminal presenters.
// It decouples canvas rasterization from the terminal library, so the
// Bubble Tea and tcell backends share the same conversion.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is cleared because the next
// frame repaints every cell anyway.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) in color fg.
// Each character keeps the background of the cell it replaces.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg RGBA) {
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if cx < 0 || cx >= s.width || y < 0 || y >= s.height {
			continue
		}
		under := s.cells[y][cx]
		bg := under.Bg
		if under.Rune == HalfBlock {
			bg = under.Fg
		}
		s.cells[y][cx] = Cell{Rune: r, Fg: fg, Bg: bg}
	}
}

// Blit converts a canvas into half-block cells. The canvas raster should be
// Width() x 2*Height() pixels; text runs are mapped onto the cell grid.
func (s *Screen) Blit(c *Canvas) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.cells[y][x] = Cell{
				Rune: HalfBlock,
				Fg:   c.At(x, 2*y),
				Bg:   c.At(x, 2*y+1),
			}
		}
	}

	sx, sy := c.Scale()
	for _, t := range c.Texts() {
		col := int(math.Floor(t.Pos.X * sx))
		row := int(math.Floor(t.Pos.Y*sy)) / 2
		if t.Anchor == AnchorCenter {
			col -= len([]rune(t.Text)) / 2
		}
		s.DrawText(col, row, t.Text, t.Color)
	}
}
