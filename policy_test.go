package pendulum

import "testing"

func TestDefaultPolicyValid(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Policy)
	}{
		{"reversed length", func(p *Policy) { p.Length.Base = Range{300, 100} }},
		{"negative frequency", func(p *Policy) { p.Width.Frequency = Range{-1, 2} }},
		{"zero color frequency", func(p *Policy) { p.ColorFrequency = Range{0, 3} }},
		{"nested chance", func(p *Policy) { p.NestedRotation = 1.5 }},
		{"clockwise chance", func(p *Policy) { p.Clockwise = -0.1 }},
		{"fractional rotation speed", func(p *Policy) { p.RotationSpeed = Range{5.2, 5.8} }},
		{"fractional length base", func(p *Policy) { p.Length.Base = Range{100.1, 100.9} }},
		{"fractional width base", func(p *Policy) { p.Width.Base = Range{3.5, 3.5} }},
	}
	for _, tt := range tests {
		p := DefaultPolicy()
		tt.modify(&p)
		if err := p.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestOscillationPolicyDraw(t *testing.T) {
	op := OscillationPolicy{
		Base:      Range{10, 10},
		Amplitude: Range{2, 2},
		Frequency: Range{0, 0},
	}
	got := op.draw(NewRandom(1))
	want := OscillatingProperty{Base: 10, Amplitude: 2, Frequency: 0}
	if got != want {
		t.Errorf("draw = %+v, want %+v", got, want)
	}
}

func TestPolicyAllowsFractionalWindowWithWholeNumber(t *testing.T) {
	p := DefaultPolicy()
	p.RotationSpeed = Range{4.2, 5.8}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
}
