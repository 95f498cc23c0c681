package pendulum

import (
	"math"
	"testing"
)

func TestOscillatorZeroFrequencyIsBase(t *testing.T) {
	p := OscillatingProperty{Base: 120, Amplitude: 30, Frequency: 0}
	for _, tt := range []float64{0, 0.1, 1, 2.5, 17, 1e6} {
		if got := p.Value(tt); got != 120 {
			t.Errorf("Value(%v) = %v, want 120", tt, got)
		}
	}
}

func TestOscillatorPeriodic(t *testing.T) {
	props := []OscillatingProperty{
		{Base: 100, Amplitude: 20, Frequency: 2},
		{Base: 5, Amplitude: 1, Frequency: 0.25},
		{Base: -3, Amplitude: 10, Frequency: 7.5},
	}
	for _, p := range props {
		for _, tt := range []float64{0, 0.1, 0.3, 1.7, 4.2} {
			a := p.Value(tt)
			b := p.Value(tt + p.Frequency)
			if math.Abs(a-b) > 1e-6 {
				t.Errorf("%+v: Value(%v) = %v, Value(t+f) = %v", p, tt, a, b)
			}
		}
	}
}

func TestOscillatorBounded(t *testing.T) {
	p := OscillatingProperty{Base: 50, Amplitude: 12, Frequency: 3}
	for i := 0; i < 1000; i++ {
		v := p.Value(float64(i) * 0.013)
		if v < p.Base-p.Amplitude-epsilon || v > p.Base+p.Amplitude+epsilon {
			t.Fatalf("Value out of range: %v", v)
		}
	}
}

func TestOscillatorQuarterPeriod(t *testing.T) {
	p := OscillatingProperty{Base: 10, Amplitude: 4, Frequency: 8}
	assertNear(t, "t=0", p.Value(0), 10)
	assertNear(t, "t=f/4", p.Value(2), 14)
	assertNear(t, "t=f/2", p.Value(4), 10)
	assertNear(t, "t=3f/4", p.Value(6), 6)
}

func TestNewOscillatingPropertyRejectsBadFrequency(t *testing.T) {
	for _, f := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := NewOscillatingProperty(1, 1, f); err == nil {
			t.Errorf("frequency %v: expected error", f)
		}
	}
	if _, err := NewOscillatingProperty(math.NaN(), 1, 1); err == nil {
		t.Error("NaN base: expected error")
	}
	if _, err := NewOscillatingProperty(1, 2, 0); err != nil {
		t.Errorf("zero frequency: unexpected error %v", err)
	}
}

func TestFixed(t *testing.T) {
	p := Fixed(33)
	if p.Amplitude != 0 || p.Frequency != 0 {
		t.Errorf("Fixed = %+v, want no oscillation", p)
	}
	assertNear(t, "value", p.Value(9), 33)
}
