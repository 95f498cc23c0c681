package pendulum

import (
	"time"

	"github.com/pkg/errors"
)

// Default bounds for a random pendulum count.
const (
	minRandomCount = 5
	maxRandomCount = 10
)

// Scene is the top-level object that owns the pendulum tree, the animation
// clock, and the random source. It is the frame driver's only entry point:
// call Update once per tick and then Draw.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	root  *Node
	clock *Clock
	rng   *Source
	names *NameGenerator

	policy     Policy
	count      int
	overrides  []Override
	background RGB

	// ClearEachFrame wipes the sink before every frame instead of leaving
	// trails.
	ClearEachFrame bool
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	debug      bool
	needsClear bool
	delta      float64
	frames     int

	screenshotQueue []string
	script          *Script
}

// NewScene validates cfg and builds a scene with a freshly generated tree.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "scene config")
	}
	clock, err := NewClock(cfg.Speed, cfg.ResumeRamp)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := NewRandom(seed)

	count := cfg.Count
	if count == 0 {
		count = rng.Int(minRandomCount, maxRandomCount)
	}

	s := &Scene{
		clock:          clock,
		rng:            rng,
		names:          NewNameGenerator(int64(seed)),
		policy:         cfg.Policy,
		count:          count,
		overrides:      cfg.Overrides,
		background:     cfg.BackgroundColor(),
		ClearEachFrame: cfg.ClearEachFrame,
		ScreenshotDir:  cfg.ScreenshotDir,
	}
	s.SetDebugMode(cfg.Debug)
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Root returns the scene's root node (always a dummy for generated trees).
func (s *Scene) Root() *Node {
	return s.root
}

// SetRoot replaces the tree with a manually composed one. The next frame
// starts with a cleared surface and no remembered positions.
func (s *Scene) SetRoot(root *Node) {
	if root == nil {
		panic("pendulum: scene root cannot be nil")
	}
	s.root = root
	s.Clear()
}

// Count returns the number of visible pendulums in generated trees.
func (s *Scene) Count() int {
	return s.count
}

// SetCount changes the number of visible pendulums and regenerates the tree.
func (s *Scene) SetCount(count int) error {
	if count < 1 {
		return errors.Errorf("scene: count %d must be >= 1", count)
	}
	s.count = count
	return s.Regenerate()
}

// Seed returns the seed of the scene's random source.
func (s *Scene) Seed() uint64 {
	return s.rng.Seed()
}

// Random returns the scene's random source.
func (s *Scene) Random() Random {
	return s.rng
}

// Regenerate replaces the tree with a new random one of the same size,
// applies the configured overrides, and clears the surface on the next
// frame.
func (s *Scene) Regenerate() error {
	root, err := GenerateTree(s.count+1, s.rng, TreeOptions{Policy: s.policy, Names: s.names})
	if err != nil {
		return errors.Wrap(err, "regenerate")
	}
	if err := applyOverrides(root, s.overrides); err != nil {
		return err
	}
	s.root = root
	s.needsClear = true
	if s.debug {
		debugLogTree(root)
	}
	return nil
}

func applyOverrides(root *Node, overrides []Override) error {
	for i, o := range overrides {
		node := root.At(o.Node)
		if node == nil {
			return errors.Errorf("overrides[%d]: no node at index %d (tree has %d)", i, o.Node, root.Count())
		}
		var err error
		if o.Setting.IsFlag() {
			err = node.SetFlag(o.Setting, o.Flag)
		} else {
			err = node.SetFloat(o.Setting, o.Value)
		}
		if err != nil {
			return errors.Wrapf(err, "overrides[%d]", i)
		}
	}
	return nil
}

// Update advances the clock by dt wall-clock seconds and steps an attached
// script. The scaled delta is consumed by the next Draw.
func (s *Scene) Update(dt float64) {
	if s.script != nil {
		s.script.step(s)
	}
	s.delta += s.clock.Tick(dt)
}

// Draw renders one frame onto sink and returns the number of segments
// drawn. Nothing is drawn while paused.
func (s *Scene) Draw(sink Sink) int {
	if s.needsClear || s.ClearEachFrame {
		sink.Clear(s.background)
		s.needsClear = false
	}
	if s.clock.Paused() {
		return 0
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	frame := Frame{Elapsed: s.clock.Elapsed(), Delta: s.delta, Sink: sink}
	s.root.Draw(&frame, 0, 0, 0)
	s.delta = 0
	s.frames++

	if s.debug {
		s.debugLog(debugStats{
			frame:        s.frames,
			drawTime:     time.Since(t0),
			segmentCount: frame.Segments(),
			elapsed:      frame.Elapsed,
		})
	}
	return frame.Segments()
}

// Frames returns the number of frames drawn.
func (s *Scene) Frames() int {
	return s.frames
}

// Clear requests that the surface be wiped before the next frame, and
// restarts every trail so no segment bridges the wipe.
func (s *Scene) Clear() {
	s.needsClear = true
	s.root.ResetTrail()
}

// Background returns the clear color.
func (s *Scene) Background() RGB {
	return s.background
}

// Clock returns the animation clock.
func (s *Scene) Clock() *Clock {
	return s.clock
}

// Elapsed returns the total animation time in seconds.
func (s *Scene) Elapsed() float64 {
	return s.clock.Elapsed()
}

// Pause stops the animation.
func (s *Scene) Pause() {
	s.clock.Pause()
}

// Resume continues a paused animation.
func (s *Scene) Resume() {
	s.clock.Resume()
}

// Paused reports whether the animation is paused.
func (s *Scene) Paused() bool {
	return s.clock.Paused()
}

// SetSpeed changes the speed multiplier.
func (s *Scene) SetSpeed(speed float64) error {
	return s.clock.SetSpeed(speed)
}

// Speed returns the target speed multiplier.
func (s *Scene) Speed() float64 {
	return s.clock.Speed()
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats are logged to stderr and tree depth and child count
// warnings are printed while building trees.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
