package pendulum

import (
	"math"
	"math/rand/v2"
)

// Random is the source of every random choice the package makes: tree
// topology, initial node parameters, and color cycle targets.
type Random interface {
	// Float returns a uniform value in [min, max).
	Float(min, max float64) float64
	// Int returns a uniform integer in [min, max], both inclusive.
	Int(min, max int) int
	// Bool returns true with the given probability.
	Bool(chance float64) bool
}

// Source is the default Random, backed by a seeded PCG generator.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// NewRandom returns a Source seeded with seed. Two sources with the same seed
// produce the same sequence.
func NewRandom(seed uint64) *Source {
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Float returns a uniform value in [min, max).
func (s *Source) Float(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Int returns a uniform integer in [min, max], both inclusive.
// If max < min the bounds are swapped.
func (s *Source) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.rng.IntN(max-min+1)
}

// Bool returns true with the given probability.
func (s *Source) Bool(chance float64) bool {
	return s.rng.Float64() < chance
}

// randomColor draws each channel uniformly from [0, 255].
func randomColor(r Random) RGB {
	return RGB{
		R: uint8(r.Int(0, 255)),
		G: uint8(r.Int(0, 255)),
		B: uint8(r.Int(0, 255)),
	}
}

// randomIntIn draws an integer from a Range whose bounds are rounded
// inward to whole numbers.
func randomIntIn(r Random, rg Range) float64 {
	return float64(r.Int(int(math.Ceil(rg.Min)), int(math.Floor(rg.Max))))
}

// randomIn draws a float from a Range.
func randomIn(r Random, rg Range) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return r.Float(rg.Min, rg.Max)
}
