package pendulum

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clock accumulates animation time from wall-clock ticks. Ticks are scaled
// by the speed multiplier; while paused they are dropped, so time never
// jumps on resume.
//
// When a ramp duration is set, resuming and speed changes ease the
// effective speed toward the target instead of switching instantly.
type Clock struct {
	elapsed float64
	speed   float64
	current float64
	paused  bool

	rampDuration float32
	ramp         *gween.Tween
}

// NewClock returns a clock with the given speed multiplier (>= 0) and ramp
// duration in seconds (>= 0, zero disables easing).
func NewClock(speed, ramp float64) (*Clock, error) {
	if err := validateSpeed(speed); err != nil {
		return nil, err
	}
	if math.IsNaN(ramp) || ramp < 0 {
		return nil, errors.Errorf("clock: ramp %v must be >= 0", ramp)
	}
	return &Clock{speed: speed, current: speed, rampDuration: float32(ramp)}, nil
}

func validateSpeed(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < 0 {
		return errors.Errorf("clock: speed %v must be a finite value >= 0", speed)
	}
	return nil
}

// Tick advances the clock by dt wall-clock seconds and returns the scaled
// delta added to the elapsed time. Negative dt counts as zero.
func (c *Clock) Tick(dt float64) float64 {
	if c.paused || dt <= 0 {
		return 0
	}
	if c.ramp != nil {
		v, done := c.ramp.Update(float32(dt))
		c.current = float64(v)
		if done {
			c.current = c.speed
			c.ramp = nil
		}
	}
	delta := dt * c.current
	c.elapsed += delta
	return delta
}

// Elapsed returns the accumulated animation time in seconds.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Speed returns the target speed multiplier.
func (c *Clock) Speed() float64 {
	return c.speed
}

// EffectiveSpeed returns the multiplier currently applied to ticks, which
// differs from Speed while a ramp is running.
func (c *Clock) EffectiveSpeed() float64 {
	if c.paused {
		return 0
	}
	return c.current
}

// SetSpeed changes the target speed multiplier.
func (c *Clock) SetSpeed(speed float64) error {
	if err := validateSpeed(speed); err != nil {
		return err
	}
	c.speed = speed
	c.startRamp(c.current)
	return nil
}

// Pause stops time from advancing.
func (c *Clock) Pause() {
	c.paused = true
	c.ramp = nil
}

// Resume lets time advance again, easing up from a standstill when a ramp
// is configured.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.startRamp(0)
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// Reset sets the elapsed time back to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
}

func (c *Clock) startRamp(from float64) {
	if c.rampDuration <= 0 || from == c.speed {
		c.current = c.speed
		c.ramp = nil
		return
	}
	c.current = from
	c.ramp = gween.New(float32(from), float32(c.speed), c.rampDuration, ease.InOutQuad)
}
