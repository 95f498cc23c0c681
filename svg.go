package pendulum

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// SVGSink collects segments and writes them as an SVG document. Clear
// discards everything collected so far, so the document only holds what a
// raster surface would still show.
type SVGSink struct {
	viewport   Viewport
	background RGB
	segments   []Segment

	// MaxSegments caps the number of kept segments; the oldest are
	// dropped first. Zero means no cap.
	MaxSegments int
}

// NewSVGSink creates a sink for a w x h document.
func NewSVGSink(w, h int) *SVGSink {
	return &SVGSink{
		viewport:   Viewport{Width: float64(w), Height: float64(h)},
		background: ColorWhite,
	}
}

// Clear implements Sink.
func (s *SVGSink) Clear(c RGB) {
	s.background = c
	s.segments = s.segments[:0]
}

// DrawSegment implements Sink.
func (s *SVGSink) DrawSegment(seg Segment) {
	if s.MaxSegments > 0 && len(s.segments) >= s.MaxSegments {
		copy(s.segments, s.segments[1:])
		s.segments = s.segments[:len(s.segments)-1]
	}
	s.segments = append(s.segments, seg)
}

// Len returns the number of collected segments.
func (s *SVGSink) Len() int {
	return len(s.segments)
}

// WriteTo renders the collected segments as SVG.
func (s *SVGSink) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	width := s.viewport.Width
	height := s.viewport.Height

	doc := svg.New(cw)
	doc.Start(width, height)
	doc.Rect(0, 0, width, height, "fill:"+cssColor(s.background))
	for _, seg := range s.segments {
		x1, y1 := s.viewport.ToScreen(seg.X1, seg.Y1)
		x2, y2 := s.viewport.ToScreen(seg.X2, seg.Y2)
		doc.Line(x1, y1, x2, y2,
			fmt.Sprintf("stroke:%s;stroke-width:%.2f;stroke-linecap:round", cssColor(seg.Color), seg.Width),
		)
	}
	doc.End()
	return cw.n, cw.err
}

func cssColor(c RGB) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// countingWriter tracks bytes written and the first error, since svgo
// does not report either.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
