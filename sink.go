package pendulum

// Sink is the drawing surface a frame is rendered onto. Implementations
// stroke each segment completely before DrawSegment returns.
type Sink interface {
	// Clear fills the whole surface with c.
	Clear(c RGB)
	// DrawSegment strokes a straight line with round caps.
	DrawSegment(seg Segment)
}

// Viewport maps world coordinates (origin at the surface center, y up) to
// surface pixels (origin at the top-left, y down).
type Viewport struct {
	Width, Height float64
}

// ToScreen converts a world point to surface pixels.
func (v Viewport) ToScreen(x, y float64) (sx, sy float64) {
	return v.Width/2 + x, v.Height/2 - y
}

// ToWorld converts surface pixels to a world point.
func (v Viewport) ToWorld(sx, sy float64) (x, y float64) {
	return sx - v.Width/2, v.Height/2 - sy
}

// RecordingSink keeps every segment it receives. Clear drops the recorded
// segments and remembers the fill color.
type RecordingSink struct {
	Segments   []Segment
	Background RGB
	Clears     int
}

// Clear implements Sink.
func (r *RecordingSink) Clear(c RGB) {
	r.Segments = r.Segments[:0]
	r.Background = c
	r.Clears++
}

// DrawSegment implements Sink.
func (r *RecordingSink) DrawSegment(seg Segment) {
	r.Segments = append(r.Segments, seg)
}

// Reset drops recorded segments without counting a clear.
func (r *RecordingSink) Reset() {
	r.Segments = r.Segments[:0]
}

// MultiSink fans every call out to several sinks in order.
type MultiSink []Sink

// Clear implements Sink.
func (m MultiSink) Clear(c RGB) {
	for _, s := range m {
		s.Clear(c)
	}
}

// DrawSegment implements Sink.
func (m MultiSink) DrawSegment(seg Segment) {
	for _, s := range m {
		s.DrawSegment(seg)
	}
}
