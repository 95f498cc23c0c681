package pendulum

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultColorFrequency is the window a new cycle length is drawn from when
// a color cycle completes.
var DefaultColorFrequency = Range{Min: 4, Max: 7}

// ColorState blends from Previous to Next over Frequency seconds. When a
// cycle completes, Next becomes Previous and a new random Next and
// Frequency are drawn.
//
// A zero Frequency freezes the state at Previous.
type ColorState struct {
	Previous  RGB
	Next      RGB
	Frequency float64
	Timer     float64

	// Window is the range new cycle frequencies are drawn from.
	Window Range

	rng    Random
	cycles int
}

// NewColorState returns a ColorState with Timer at zero. rng is required
// unless frequency is zero, since completing a cycle draws new targets.
func NewColorState(previous, next RGB, frequency float64, window Range, rng Random) (ColorState, error) {
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency < 0 {
		return ColorState{}, errors.Errorf("color state: frequency %v must be a finite value >= 0", frequency)
	}
	if err := window.validate("color state window"); err != nil {
		return ColorState{}, err
	}
	if frequency > 0 && window.Min <= 0 {
		return ColorState{}, errors.Errorf("color state: window minimum %v must be > 0", window.Min)
	}
	if frequency > 0 && rng == nil {
		return ColorState{}, errors.New("color state: a random source is required when cycling")
	}
	return ColorState{
		Previous:  previous,
		Next:      next,
		Frequency: frequency,
		Window:    window,
		rng:       rng,
	}, nil
}

// StaticColor returns a ColorState that always yields c.
func StaticColor(c RGB) ColorState {
	return ColorState{Previous: c, Next: c}
}

// Cycles returns the number of completed cycles.
func (c *ColorState) Cycles() int {
	return c.cycles
}

// Update advances the timer by dt seconds and returns the blended color for
// this frame. Reaching Frequency starts a new cycle with the timer reset to
// zero; time past the cycle boundary is discarded. Negative dt is treated
// as zero.
func (c *ColorState) Update(dt float64) RGB {
	if c.Frequency == 0 {
		return c.Previous
	}
	if dt > 0 {
		c.Timer += dt
	}
	if c.Timer >= c.Frequency {
		c.advanceCycle()
	}
	return lerpRGB(c.Previous, c.Next, c.Timer/c.Frequency)
}

// Current returns the blended color without advancing the timer.
func (c *ColorState) Current() RGB {
	if c.Frequency == 0 {
		return c.Previous
	}
	return lerpRGB(c.Previous, c.Next, c.Timer/c.Frequency)
}

func (c *ColorState) advanceCycle() {
	c.Timer = 0
	c.Previous = c.Next
	c.cycles++
	if c.rng == nil {
		// Without a source there is nothing new to blend toward.
		return
	}
	c.Next = randomColor(c.rng)
	c.Frequency = randomIn(c.rng, c.Window)
}
