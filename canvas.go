package pendulum

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a persistent offscreen image that trails are drawn onto. It is
// NOT cleared between frames: every segment stays until Clear is called,
// which is what turns the moving tips into trails.
//
// Canvas implements Sink.
type Canvas struct {
	image     *ebiten.Image
	w, h      int
	viewport  Viewport
	Antialias bool
}

// NewCanvas creates a canvas of the given size in pixels.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		image:     ebiten.NewImage(w, h),
		w:         w,
		h:         h,
		viewport:  Viewport{Width: float64(w), Height: float64(h)},
		Antialias: true,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Viewport returns the world-to-pixel mapping for this canvas.
func (c *Canvas) Viewport() Viewport {
	return c.viewport
}

// Clear implements Sink by filling the canvas with bg.
func (c *Canvas) Clear(bg RGB) {
	c.image.Fill(bg)
}

// DrawSegment implements Sink. The line is stroked with round caps: a
// filled circle of the stroke's radius is stamped on both endpoints.
func (c *Canvas) DrawSegment(seg Segment) {
	x1, y1 := c.viewport.ToScreen(seg.X1, seg.Y1)
	x2, y2 := c.viewport.ToScreen(seg.X2, seg.Y2)
	w := float32(seg.Width)
	vector.StrokeLine(c.image, float32(x1), float32(y1), float32(x2), float32(y2), w, seg.Color, c.Antialias)
	vector.DrawFilledCircle(c.image, float32(x1), float32(y1), w/2, seg.Color, c.Antialias)
	vector.DrawFilledCircle(c.image, float32(x2), float32(y2), w/2, seg.Color, c.Antialias)
}

// Resize reallocates the canvas at a new size. Contents are discarded.
func (c *Canvas) Resize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	if c.image != nil {
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(w, h)
	c.w, c.h = w, h
	c.viewport = Viewport{Width: float64(w), Height: float64(h)}
}

// Dispose deallocates the underlying image. The Canvas should not be
// used after calling Dispose.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
