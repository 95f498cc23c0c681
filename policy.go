package pendulum

import (
	"math"

	"github.com/pkg/errors"
)

// OscillationPolicy describes the windows a random OscillatingProperty is
// drawn from. Base is drawn as a whole number.
type OscillationPolicy struct {
	Base      Range `yaml:"base"`
	Amplitude Range `yaml:"amplitude"`
	Frequency Range `yaml:"frequency"`
}

// Policy holds the windows for every randomly drawn node parameter.
type Policy struct {
	Length         OscillationPolicy `yaml:"length"`
	Width          OscillationPolicy `yaml:"width"`
	RotationSpeed  Range             `yaml:"rotation_speed"` // degrees per second, whole numbers
	InitialAngle   Range             `yaml:"initial_angle"`  // degrees
	ColorFrequency Range             `yaml:"color_frequency"`
	NestedRotation float64           `yaml:"nested_rotation"` // chance in [0, 1]
	Clockwise      float64           `yaml:"clockwise"`       // chance in [0, 1]
}

// DefaultPolicy returns the parameter windows used when nothing else is
// configured.
func DefaultPolicy() Policy {
	return Policy{
		Length: OscillationPolicy{
			Base:      Range{100, 250},
			Amplitude: Range{10, 25},
			Frequency: Range{0.25, 10},
		},
		Width: OscillationPolicy{
			Base:      Range{5, 25},
			Amplitude: Range{1, 10},
			Frequency: Range{0.1, 10},
		},
		RotationSpeed:  Range{5, 25},
		InitialAngle:   Range{0, 360},
		ColorFrequency: DefaultColorFrequency,
		NestedRotation: 0.75,
		Clockwise:      0.5,
	}
}

// Validate reports the first malformed window.
func (p Policy) Validate() error {
	checks := []struct {
		name string
		r    Range
	}{
		{"length.base", p.Length.Base},
		{"length.amplitude", p.Length.Amplitude},
		{"length.frequency", p.Length.Frequency},
		{"width.base", p.Width.Base},
		{"width.amplitude", p.Width.Amplitude},
		{"width.frequency", p.Width.Frequency},
		{"rotation_speed", p.RotationSpeed},
		{"initial_angle", p.InitialAngle},
		{"color_frequency", p.ColorFrequency},
	}
	for _, c := range checks {
		if err := c.r.validate(c.name); err != nil {
			return errors.Wrap(err, "policy")
		}
	}
	for _, c := range []struct {
		name string
		r    Range
	}{
		{"length.base", p.Length.Base},
		{"width.base", p.Width.Base},
		{"rotation_speed", p.RotationSpeed},
	} {
		if math.Ceil(c.r.Min) > math.Floor(c.r.Max) {
			return errors.Errorf("policy: %s window %v..%v holds no whole number", c.name, c.r.Min, c.r.Max)
		}
	}
	if p.Length.Frequency.Min < 0 || p.Width.Frequency.Min < 0 {
		return errors.New("policy: oscillation frequencies must be >= 0")
	}
	if p.ColorFrequency.Min <= 0 {
		return errors.Errorf("policy: color_frequency minimum %v must be > 0", p.ColorFrequency.Min)
	}
	if p.NestedRotation < 0 || p.NestedRotation > 1 {
		return errors.Errorf("policy: nested_rotation chance %v outside [0, 1]", p.NestedRotation)
	}
	if p.Clockwise < 0 || p.Clockwise > 1 {
		return errors.Errorf("policy: clockwise chance %v outside [0, 1]", p.Clockwise)
	}
	return nil
}

// orDefault substitutes DefaultPolicy for the zero value and validates the
// result.
func (p Policy) orDefault() (Policy, error) {
	if p == (Policy{}) {
		p = DefaultPolicy()
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (op OscillationPolicy) draw(r Random) OscillatingProperty {
	return OscillatingProperty{
		Base:      randomIntIn(r, op.Base),
		Amplitude: randomIn(r, op.Amplitude),
		Frequency: randomIn(r, op.Frequency),
	}
}
