package pendulum

import "testing"

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(320, 200)
	defer c.Dispose()
	if c.Width() != 320 || c.Height() != 200 {
		t.Errorf("size = %dx%d, want 320x200", c.Width(), c.Height())
	}
	if b := c.Image().Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("image bounds = %v", b)
	}
	if v := c.Viewport(); v.Width != 320 || v.Height != 200 {
		t.Errorf("viewport = %+v", v)
	}
	if !c.Antialias {
		t.Error("Antialias should default to true")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10)
	defer c.Dispose()
	old := c.Image()
	c.Resize(10, 10)
	if c.Image() != old {
		t.Error("same-size Resize should keep the image")
	}
	c.Resize(40, 20)
	if c.Width() != 40 || c.Height() != 20 {
		t.Errorf("size after Resize = %dx%d", c.Width(), c.Height())
	}
	if v := c.Viewport(); v.Width != 40 || v.Height != 20 {
		t.Errorf("viewport after Resize = %+v", v)
	}
}

func TestCanvasAsSceneSink(t *testing.T) {
	s, err := NewScene(testConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(64, 48)
	defer c.Dispose()
	s.Update(0.1)
	s.Draw(c)
	s.Update(0.1)
	if n := s.Draw(c); n != 4 {
		t.Errorf("segments = %d, want 4", n)
	}
}

func TestCanvasDisposeIdempotent(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Dispose()
	c.Dispose()
	if c.Image() != nil {
		t.Error("Image should be nil after Dispose")
	}
}
