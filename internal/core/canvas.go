package core

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ellipseKappa places cubic control points so four curves approximate a
// quarter ellipse each.
const ellipseKappa = 0.5522847498

// TextAnchor selects which point of a text run its position refers to.
type TextAnchor int

const (
	AnchorTopLeft TextAnchor = iota // Position is the top-left corner
	AnchorCenter                    // Position is the center of the text box
)

// TextRun is a piece of text placed on the canvas in world coordinates.
// Presenters draw text runs on top of the rasterized pixels.
type TextRun struct {
	Pos    Vec
	Text   string
	Color  RGBA
	Size   float64 // Line height in world units
	Anchor TextAnchor
}

// Canvas is a 2D drawing surface backed by an *image.RGBA.
// Shapes are given in world coordinates and rasterized with anti-aliasing at
// a resolution chosen by the presenter, so the same scene can be shown in an
// 800x600 window or in an 80x48 half-block terminal grid.
// Shapes smaller than a pixel on both axes paint the whole pixel under their
// center so they never vanish at low resolution.
type Canvas struct {
	width, height  int     // Raster size in pixels
	worldW, worldH float64 // World size mapped onto the raster
	scaleX, scaleY float64 // Pixels per world unit
	img            *image.RGBA
	raster         *vector.Rasterizer
	texts          []TextRun
}

// NewCanvas creates a canvas mapping a worldW x worldH world onto a
// pixW x pixH raster, initially transparent.
func NewCanvas(worldW, worldH float64, pixW, pixH int) *Canvas {
	c := &Canvas{worldW: worldW, worldH: worldH, raster: vector.NewRasterizer(1, 1)}
	c.Resize(pixW, pixH)
	return c
}

// Resize changes the raster resolution. The world size is unchanged and the
// content is cleared.
func (c *Canvas) Resize(pixW, pixH int) {
	pixW = Max(pixW, 1)
	pixH = Max(pixH, 1)
	c.width = pixW
	c.height = pixH
	c.scaleX = float64(pixW) / c.worldW
	c.scaleY = float64(pixH) / c.worldH
	c.img = image.NewRGBA(image.Rect(0, 0, pixW, pixH))
	c.texts = c.texts[:0]
}

// Width returns the raster width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the raster height in pixels.
func (c *Canvas) Height() int { return c.height }

// WorldSize returns the world dimensions mapped onto the raster.
func (c *Canvas) WorldSize() (float64, float64) { return c.worldW, c.worldH }

// Scale returns the number of pixels per world unit on each axis.
func (c *Canvas) Scale() (float64, float64) { return c.scaleX, c.scaleY }

// Image returns the raster. Its pixels are alpha-premultiplied and packed
// row by row with no padding.
func (c *Canvas) Image() *image.RGBA { return c.img }

// SameGeometry reports whether two canvases share world and raster sizes.
func (c *Canvas) SameGeometry(o *Canvas) bool {
	return c.width == o.width && c.height == o.height &&
		c.worldW == o.worldW && c.worldH == o.worldH
}

// NewLayer returns a transparent canvas with the same geometry.
func (c *Canvas) NewLayer() *Canvas {
	return NewCanvas(c.worldW, c.worldH, c.width, c.height)
}

// Clear fills every pixel with col and drops all text runs.
func (c *Canvas) Clear(col RGBA) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
	c.texts = c.texts[:0]
}

// At returns the pixel at raster coordinates (x, y) with straight alpha.
// Out-of-bounds coordinates return Transparent.
func (c *Canvas) At(x, y int) RGBA {
	if !image.Pt(x, y).In(c.img.Rect) {
		return Transparent
	}
	return FromColor(c.img.RGBAAt(x, y))
}

// Texts returns the text runs drawn since the last Clear, in draw order.
func (c *Canvas) Texts() []TextRun {
	return c.texts
}

// paint composites col over the raster rectangle r.
func (c *Canvas) paint(r image.Rectangle, col RGBA) {
	draw.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{}, draw.Over)
}

// toPixel maps a world point into continuous raster coordinates.
func (c *Canvas) toPixel(p Vec) Vec {
	return Vec{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
}

// dot paints the pixel under a point given in raster coordinates.
func (c *Canvas) dot(px Vec, col RGBA) {
	x, y := int(math.Floor(px.X)), int(math.Floor(px.Y))
	c.paint(image.Rect(x, y, x+1, y+1), col)
}

// fill rasterizes a closed path whose raster-space bounds are lo..hi.
// trace receives the rasterizer and the offset to subtract from every point.
func (c *Canvas) fill(lo, hi Vec, col RGBA, trace func(z *vector.Rasterizer, off Vec)) {
	if hi.X-lo.X < 1 && hi.Y-lo.Y < 1 {
		c.dot(lo.Add(hi).Scale(0.5), col)
		return
	}

	r := image.Rect(
		int(math.Floor(lo.X)), int(math.Floor(lo.Y)),
		int(math.Ceil(hi.X)), int(math.Ceil(hi.Y)),
	).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}

	z := c.raster
	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	trace(z, V(float64(r.Min.X), float64(r.Min.Y)))
	z.Draw(c.img, r, image.NewUniform(col.NRGBA()), image.Point{})
}

// HLine draws a horizontal line covering world x in [x0, x1] on the pixel
// row that contains world y.
func (c *Canvas) HLine(x0, x1, y float64, col RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	py := int(math.Floor(y * c.scaleY))
	r := image.Rect(int(math.Floor(x0*c.scaleX)), py, int(math.Ceil(x1*c.scaleX)), py+1)
	c.paint(r.Intersect(c.img.Rect), col)
}

// FillRect fills the world rectangle with top-left (x, y) and size w x h.
func (c *Canvas) FillRect(x, y, w, h float64, col RGBA) {
	c.FillPolygon([]Vec{V(x, y), V(x+w, y), V(x+w, y+h), V(x, y+h)}, col)
}

// FillEllipse fills an axis-aligned ellipse centered at (cx, cy) with radii
// rx and ry in world units.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col RGBA) {
	center := c.toPixel(V(cx, cy))
	prx := rx * c.scaleX
	pry := ry * c.scaleY
	if prx <= 0 || pry <= 0 {
		return
	}

	lo := V(center.X-prx, center.Y-pry)
	hi := V(center.X+prx, center.Y+pry)
	c.fill(lo, hi, col, func(z *vector.Rasterizer, off Vec) {
		x, y := float32(center.X-off.X), float32(center.Y-off.Y)
		ax, ay := float32(prx), float32(pry)
		kx, ky := float32(prx*ellipseKappa), float32(pry*ellipseKappa)

		z.MoveTo(x+ax, y)
		z.CubeTo(x+ax, y+ky, x+kx, y+ay, x, y+ay)
		z.CubeTo(x-kx, y+ay, x-ax, y+ky, x-ax, y)
		z.CubeTo(x-ax, y-ky, x-kx, y-ay, x, y-ay)
		z.CubeTo(x+kx, y-ay, x+ax, y-ky, x+ax, y)
		z.ClosePath()
	})
}

// FillEllipseRect fills the ellipse inscribed in the world rectangle with
// top-left (x, y) and size w x h.
func (c *Canvas) FillEllipseRect(x, y, w, h float64, col RGBA) {
	c.FillEllipse(x+w/2, y+h/2, w/2, h/2, col)
}

// FillCircle fills a circle of world radius r centered at (cx, cy).
// On a raster with unequal axis scales it becomes a pixel-space ellipse.
func (c *Canvas) FillCircle(cx, cy, r float64, col RGBA) {
	c.FillEllipse(cx, cy, r, r, col)
}

// FillPolygon fills a closed polygon given in world coordinates.
// Polygons with fewer than 3 points draw nothing.
func (c *Canvas) FillPolygon(pts []Vec, col RGBA) {
	if len(pts) < 3 {
		return
	}

	lo := V(math.Inf(1), math.Inf(1))
	hi := V(math.Inf(-1), math.Inf(-1))
	for _, p := range pts {
		px := c.toPixel(p)
		lo = V(math.Min(lo.X, px.X), math.Min(lo.Y, px.Y))
		hi = V(math.Max(hi.X, px.X), math.Max(hi.Y, px.Y))
	}

	c.fill(lo, hi, col, func(z *vector.Rasterizer, off Vec) {
		for i, p := range pts {
			px := c.toPixel(p).Sub(off)
			if i == 0 {
				z.MoveTo(float32(px.X), float32(px.Y))
			} else {
				z.LineTo(float32(px.X), float32(px.Y))
			}
		}
		z.ClosePath()
	})
}

// Text places a text run with its top-left corner at world (x, y).
func (c *Canvas) Text(x, y float64, s string, col RGBA, size float64) {
	c.texts = append(c.texts, TextRun{Pos: V(x, y), Text: s, Color: col, Size: size, Anchor: AnchorTopLeft})
}

// TextCentered places a text run centered on world (cx, cy).
func (c *Canvas) TextCentered(cx, cy float64, s string, col RGBA, size float64) {
	c.texts = append(c.texts, TextRun{Pos: V(cx, cy), Text: s, Color: col, Size: size, Anchor: AnchorCenter})
}

// Composite draws a layer of the same geometry over this canvas and takes
// over its text runs. Layers with different geometry are ignored.
func (c *Canvas) Composite(layer *Canvas) {
	if !c.SameGeometry(layer) {
		return
	}
	draw.Draw(c.img, c.img.Rect, layer.img, image.Point{}, draw.Over)
	c.texts = append(c.texts, layer.texts...)
}
