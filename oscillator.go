package pendulum

import (
	"math"

	"github.com/pkg/errors"
)

// OscillatingProperty is a value that swings sinusoidally around Base.
// Frequency is the period in seconds; a zero Frequency disables the swing
// and the value is always Base.
type OscillatingProperty struct {
	Base      float64
	Amplitude float64
	Frequency float64
}

// NewOscillatingProperty validates and returns an OscillatingProperty.
// Negative or NaN frequencies are rejected; zero is the "fixed" sentinel.
func NewOscillatingProperty(base, amplitude, frequency float64) (OscillatingProperty, error) {
	p := OscillatingProperty{Base: base, Amplitude: amplitude, Frequency: frequency}
	if err := p.Validate(); err != nil {
		return OscillatingProperty{}, err
	}
	return p, nil
}

// Fixed returns a property that never oscillates.
func Fixed(base float64) OscillatingProperty {
	return OscillatingProperty{Base: base}
}

// Validate reports whether the property is usable.
func (p OscillatingProperty) Validate() error {
	if math.IsNaN(p.Base) || math.IsNaN(p.Amplitude) || math.IsInf(p.Base, 0) || math.IsInf(p.Amplitude, 0) {
		return errors.New("oscillating property: base and amplitude must be finite")
	}
	if math.IsNaN(p.Frequency) || math.IsInf(p.Frequency, 0) || p.Frequency < 0 {
		return errors.Errorf("oscillating property: frequency %v must be a finite value >= 0", p.Frequency)
	}
	return nil
}

// Value samples the property at time t (seconds, t >= 0). The result is
// periodic with period Frequency and lies in [Base-|Amplitude|, Base+|Amplitude|].
func (p OscillatingProperty) Value(t float64) float64 {
	if p.Frequency == 0 {
		return p.Base
	}
	phase := math.Mod(t, p.Frequency) / p.Frequency
	return p.Base + p.Amplitude*math.Sin(2*math.Pi*phase)
}
