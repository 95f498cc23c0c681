package pendulum

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// RasterSink draws onto an in-memory image with fogleman/gg. It needs no
// window or GPU, which makes it the sink for headless rendering.
type RasterSink struct {
	ctx      *gg.Context
	viewport Viewport
}

// NewRasterSink creates a w x h raster surface.
func NewRasterSink(w, h int) *RasterSink {
	ctx := gg.NewContext(w, h)
	ctx.SetLineCapRound()
	return &RasterSink{
		ctx:      ctx,
		viewport: Viewport{Width: float64(w), Height: float64(h)},
	}
}

// Clear implements Sink.
func (r *RasterSink) Clear(c RGB) {
	r.ctx.SetColor(c)
	r.ctx.Clear()
}

// DrawSegment implements Sink.
func (r *RasterSink) DrawSegment(seg Segment) {
	x1, y1 := r.viewport.ToScreen(seg.X1, seg.Y1)
	x2, y2 := r.viewport.ToScreen(seg.X2, seg.Y2)
	r.ctx.SetRGB255(int(seg.Color.R), int(seg.Color.G), int(seg.Color.B))
	r.ctx.SetLineWidth(seg.Width)
	r.ctx.DrawLine(x1, y1, x2, y2)
	r.ctx.Stroke()
}

// Image returns the rendered image.
func (r *RasterSink) Image() image.Image {
	return r.ctx.Image()
}

// Viewport returns the world-to-pixel mapping for this surface.
func (r *RasterSink) Viewport() Viewport {
	return r.viewport
}

// SavePNG writes the current image to path.
func (r *RasterSink) SavePNG(path string) error {
	if err := r.ctx.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// EncodePNG writes the current image as PNG to w.
func (r *RasterSink) EncodePNG(w io.Writer) error {
	return errors.Wrap(r.ctx.EncodePNG(w), "encode png")
}
