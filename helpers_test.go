package pendulum

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// scriptedRandom replays queued values. When a queue runs dry it returns
// the lower bound (or false), so tests only script what they care about.
type scriptedRandom struct {
	floats []float64
	ints   []int
	bools  []bool
}

func (r *scriptedRandom) Float(min, max float64) float64 {
	if len(r.floats) == 0 {
		return min
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Int(min, max int) int {
	if len(r.ints) == 0 {
		return min
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *scriptedRandom) Bool(chance float64) bool {
	if len(r.bools) == 0 {
		return false
	}
	v := r.bools[0]
	r.bools = r.bools[1:]
	return v
}

// fixedNode returns a visible node with constant length and width, no
// rotation, and a static color.
func fixedNode(t *testing.T, name string, length, angle float64) *Node {
	t.Helper()
	n, err := NewNode(NodeParams{
		Name:         name,
		Length:       Fixed(length),
		Width:        Fixed(2),
		InitialAngle: angle,
		Color:        StaticColor(ColorBlack),
	})
	if err != nil {
		t.Fatalf("NewNode(%s): %v", name, err)
	}
	return n
}

// testConfig returns a deterministic config that writes nowhere.
func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Count = 4
	cfg.Width = 64
	cfg.Height = 48
	cfg.ScreenshotDir = t.TempDir()
	return cfg
}
