package pendulum

import (
	"math"
	"testing"
)

func assertPoint(t *testing.T, name string, got Vec4, x, y, z float64) {
	t.Helper()
	assertNear(t, name+".x", got.X(), x)
	assertNear(t, name+".y", got.Y(), y)
	assertNear(t, name+".z", got.Z(), z)
	assertNear(t, name+".w", got.W(), 1)
}

func TestRotateAfterTranslateMatchesClosedForm(t *testing.T) {
	const d = 150.0
	angles := []float64{0, 90, 180, 270, 33.3, -47, 123.456, 359.9}
	rng := NewRandom(99)
	for i := 0; i < 20; i++ {
		angles = append(angles, rng.Float(-720, 720))
	}
	for _, deg := range angles {
		a := deg * math.Pi / 180
		got := Concatenate(Translate(d, 0, 0), RotateZ(a)).Apply(Origin)
		assertPoint(t, "rotated", got, d*math.Cos(a), d*math.Sin(a), 0)
	}
}

func TestConcatenateAppliesFirstThenSecond(t *testing.T) {
	a := RotateZ(0.7).Then(Scale(2, 3, 1))
	b := Translate(4, -5, 6).Then(ShearX(0.2, 0.1))
	for _, p := range []Vec4{Origin, Point(1, 2, 3), Point(-7, 0.5, 2)} {
		got := Apply(Concatenate(a, b), p)
		want := Apply(b, Apply(a, p))
		assertPoint(t, "composed", got, want.X(), want.Y(), want.Z())
	}
}

func TestConcatenateAssociative(t *testing.T) {
	a := RotateX(0.3)
	b := Translate(1, 2, 3)
	c := RotateY(-1.1)
	left := Concatenate(Concatenate(a, b), c)
	right := Concatenate(a, Concatenate(b, c))
	if !left.ApproxEqual(right, epsilon) {
		t.Errorf("not associative:\n%v\n%v", left, right)
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	m := RotateZ(1.2).Then(Translate(3, 4, 5))
	if !Concatenate(Identity(), m).ApproxEqual(m, epsilon) {
		t.Error("Identity then m != m")
	}
	if !Concatenate(m, Identity()).ApproxEqual(m, epsilon) {
		t.Error("m then Identity != m")
	}
}

func TestTranslateColumn(t *testing.T) {
	m := Translate(7, 8, 9)
	assertNear(t, "m[0][3]", m.At(0, 3), 7)
	assertNear(t, "m[1][3]", m.At(1, 3), 8)
	assertNear(t, "m[2][3]", m.At(2, 3), 9)
	assertPoint(t, "origin", m.Apply(Origin), 7, 8, 9)
}

func TestRotationsQuarterTurn(t *testing.T) {
	q := math.Pi / 2
	assertPoint(t, "rotZ x", RotateZ(q).Apply(Point(1, 0, 0)), 0, 1, 0)
	assertPoint(t, "rotX y", RotateX(q).Apply(Point(0, 1, 0)), 0, 0, 1)
	assertPoint(t, "rotY z", RotateY(q).Apply(Point(0, 0, 1)), 1, 0, 0)
}

func TestScaleAndShear(t *testing.T) {
	assertPoint(t, "scale", Scale(2, 3, 4).Apply(Point(1, 1, 1)), 2, 3, 4)
	assertPoint(t, "shearX", ShearX(2, 3).Apply(Point(1, 1, 1)), 1, 3, 4)
}

func TestFromRows(t *testing.T) {
	m := FromRows([4][4]float64{
		{1, 0, 0, 10},
		{0, 1, 0, 20},
		{0, 0, 1, 30},
		{0, 0, 0, 1},
	})
	if !m.ApproxEqual(Translate(10, 20, 30), epsilon) {
		t.Errorf("FromRows = %v, want translation", m)
	}
}

func TestSegmentTransform(t *testing.T) {
	tip := segmentTransform(10, -5, math.Pi, 100).Apply(Origin)
	assertPoint(t, "tip", tip, -90, -5, 0)
}
