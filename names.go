package pendulum

import (
	"math/rand"
	"strconv"

	"github.com/Pallinder/go-randomdata"
)

// NameGenerator hands out unique, human-readable node names. Names are
// deterministic for a given seed.
//
// randomdata keeps its generator in a package global, so a NameGenerator
// reseeds it on creation; generators are not meant to be interleaved.
type NameGenerator struct {
	used map[string]int
}

// NewNameGenerator returns a generator seeded with seed.
func NewNameGenerator(seed int64) *NameGenerator {
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))
	return &NameGenerator{used: make(map[string]int)}
}

// Next returns a name not handed out before by this generator.
func (g *NameGenerator) Next() string {
	for attempt := 0; attempt < 16; attempt++ {
		name := randomdata.SillyName()
		if _, exists := g.used[name]; !exists {
			g.used[name] = 1
			return name
		}
	}
	// The silly-name space is finite; fall back to numbered duplicates.
	name := randomdata.SillyName()
	g.used[name]++
	return name + "-" + strconv.Itoa(g.used[name])
}

