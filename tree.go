package pendulum

import (
	"github.com/pkg/errors"
)

// Edge is an undirected edge between two node labels.
type Edge struct {
	A, B int
}

// RandomPrufer draws a Prüfer sequence for a labeled tree on n nodes:
// n-2 labels, each uniform in [0, n-1]. For n < 3 the sequence is empty.
func RandomPrufer(n int, rng Random) []int {
	if n < 3 {
		return []int{}
	}
	seq := make([]int, n-2)
	for i := range seq {
		seq[i] = rng.Int(0, n-1)
	}
	return seq
}

// DecodePrufer converts a Prüfer sequence into the n-1 edges of the labeled
// tree it encodes. n = 1 yields no edges and n = 2 a single edge; in both
// cases seq must be empty.
//
// Each step joins the smallest still-open label that no longer appears in
// the remaining sequence with the head of the sequence, then closes that
// label and consumes the head. The last two open labels are joined at the
// end.
func DecodePrufer(n int, seq []int) ([]Edge, error) {
	if n < 1 {
		return nil, errors.Errorf("tree: node count %d must be >= 1", n)
	}
	want := n - 2
	if want < 0 {
		want = 0
	}
	if len(seq) != want {
		return nil, errors.Errorf("tree: sequence length %d, want %d for %d nodes", len(seq), want, n)
	}

	// remaining[v] counts the occurrences of v in the unconsumed sequence.
	remaining := make([]int, n)
	for i, v := range seq {
		if v < 0 || v >= n {
			return nil, errors.Errorf("tree: sequence[%d] = %d out of range [0, %d]", i, v, n-1)
		}
		remaining[v]++
	}

	open := make([]bool, n)
	for i := range open {
		open[i] = true
	}

	edges := make([]Edge, 0, n-1)
	for _, y := range seq {
		x := -1
		for v := 0; v < n; v++ {
			if open[v] && remaining[v] == 0 {
				x = v
				break
			}
		}
		// A valid sequence always leaves at least two leaves open; x is found.
		edges = append(edges, Edge{x, y})
		open[x] = false
		remaining[y]--
	}

	last := make([]int, 0, 2)
	for v := 0; v < n; v++ {
		if open[v] {
			last = append(last, v)
		}
	}
	if len(last) == 2 {
		edges = append(edges, Edge{last[0], last[1]})
	}
	return edges, nil
}

// OrientTree turns an undirected tree into child lists directed away from
// root. children[v] lists v's children in the order their edges were
// given. Returns an error if edges do not form a tree on n nodes.
func OrientTree(n int, edges []Edge, root int) ([][]int, error) {
	if n < 1 {
		return nil, errors.Errorf("tree: node count %d must be >= 1", n)
	}
	if root < 0 || root >= n {
		return nil, errors.Errorf("tree: root %d out of range [0, %d]", root, n-1)
	}
	if len(edges) != n-1 {
		return nil, errors.Errorf("tree: %d edges, want %d for %d nodes", len(edges), n-1, n)
	}

	adjacent := make([][]int, n)
	for _, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return nil, errors.Errorf("tree: edge %d-%d out of range [0, %d]", e.A, e.B, n-1)
		}
		if e.A == e.B {
			return nil, errors.Errorf("tree: self loop on %d", e.A)
		}
		adjacent[e.A] = append(adjacent[e.A], e.B)
		adjacent[e.B] = append(adjacent[e.B], e.A)
	}

	children := make([][]int, n)
	visited := make([]bool, n)
	visited[root] = true
	seen := 1

	var walk func(v int) error
	walk = func(v int) error {
		for _, w := range adjacent[v] {
			if visited[w] {
				continue
			}
			visited[w] = true
			seen++
			children[v] = append(children[v], w)
			if err := walk(w); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	if seen != n {
		return nil, errors.Errorf("tree: only %d of %d nodes reachable from root %d", seen, n, root)
	}
	return children, nil
}

// TreeOptions control GenerateTree.
type TreeOptions struct {
	// Policy supplies the windows node parameters are drawn from. The zero
	// value means DefaultPolicy.
	Policy Policy
	// Names, when set, names each node. Nodes are unnamed otherwise.
	Names *NameGenerator
}

// GenerateTree builds a random pendulum tree on n nodes (n >= 1) and returns
// its root. The root is node 0 of the labeled tree and is a dummy: it is
// never drawn but still anchors its children. n = 1 returns a lone dummy.
func GenerateTree(n int, rng Random, opts TreeOptions) (*Node, error) {
	if n < 1 {
		return nil, errors.Errorf("tree: node count %d must be >= 1", n)
	}
	if rng == nil {
		return nil, errors.New("tree: random source is nil")
	}
	policy, err := opts.Policy.orDefault()
	if err != nil {
		return nil, errors.Wrap(err, "tree")
	}

	edges, err := DecodePrufer(n, RandomPrufer(n, rng))
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	children, err := OrientTree(n, edges, 0)
	if err != nil {
		return nil, errors.Wrap(err, "orient")
	}

	nodes := make([]*Node, n)
	for i := range nodes {
		name := ""
		if opts.Names != nil {
			name = opts.Names.Next()
		}
		nodes[i] = newRandomNode(name, rng, policy)
	}
	nodes[0].Dummy = true

	for parent, list := range children {
		for _, child := range list {
			nodes[parent].AddChild(nodes[child])
		}
	}
	return nodes[0], nil
}
