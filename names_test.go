package pendulum

import "testing"

func TestNameGeneratorUnique(t *testing.T) {
	g := NewNameGenerator(1)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		name := g.Next()
		if name == "" {
			t.Fatal("empty name")
		}
		if seen[name] {
			t.Fatalf("duplicate name %q after %d names", name, i)
		}
		seen[name] = true
	}
}

func TestNameGeneratorDeterministic(t *testing.T) {
	a := NewNameGenerator(9)
	first := []string{a.Next(), a.Next(), a.Next()}
	b := NewNameGenerator(9)
	for i, want := range first {
		if got := b.Next(); got != want {
			t.Errorf("name %d = %q, want %q", i, got, want)
		}
	}
}
