package pendulum

import (
	"math"

	"github.com/pkg/errors"
)

// --- ID counter ---

// nodeIDCounter is a plain counter; the package is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Frame ---

// Frame carries the per-tick animation context into Node.Draw. Elapsed is
// the total animation time in seconds and drives angles and oscillations;
// Delta is the time since the previous tick and drives color timers.
type Frame struct {
	Elapsed float64
	Delta   float64
	Sink    Sink

	// segments counts the strokes emitted during this frame.
	segments int
}

// Segments returns the number of segments drawn with this frame so far.
func (f *Frame) Segments() int {
	return f.segments
}

// --- Node ---

// Node is one pendulum arm. Its tip is drawn as a trail: each frame a
// segment is stroked from the tip's previous position to its new one.
// Children hang from the tip.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy. Parent is only used to reject cycles.
	Parent   *Node
	children []*Node

	// Geometry
	Length        OscillatingProperty
	Width         OscillatingProperty
	RotationSpeed float64 // degrees per second
	InitialAngle  float64 // degrees
	Clockwise     bool

	Color ColorState

	// NestedRotation passes this node's resolved angle to its children as
	// their reference angle. When false, children receive the angle this
	// node itself was given.
	NestedRotation bool

	// Dummy nodes take part in the transform chain but are never drawn.
	Dummy bool

	lastX, lastY float64
	hasLast      bool
}

// NodeParams are the explicit parameters for a manually composed node.
type NodeParams struct {
	Name           string
	Length         OscillatingProperty
	Width          OscillatingProperty
	RotationSpeed  float64
	InitialAngle   float64
	Clockwise      bool
	Color          ColorState
	NestedRotation bool
	Dummy          bool
}

// NewNode validates params and returns a node with no children.
func NewNode(params NodeParams) (*Node, error) {
	if err := params.Length.Validate(); err != nil {
		return nil, errors.Wrap(err, "length")
	}
	if err := params.Width.Validate(); err != nil {
		return nil, errors.Wrap(err, "width")
	}
	for name, v := range map[string]float64{
		"rotation speed": params.RotationSpeed,
		"initial angle":  params.InitialAngle,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Errorf("%s must be finite, got %v", name, v)
		}
	}
	if params.Color.Frequency < 0 || math.IsNaN(params.Color.Frequency) {
		return nil, errors.Errorf("color frequency %v must be >= 0", params.Color.Frequency)
	}
	return &Node{
		ID:             nextNodeID(),
		Name:           params.Name,
		Length:         params.Length,
		Width:          params.Width,
		RotationSpeed:  params.RotationSpeed,
		InitialAngle:   params.InitialAngle,
		Clockwise:      params.Clockwise,
		Color:          params.Color,
		NestedRotation: params.NestedRotation,
		Dummy:          params.Dummy,
	}, nil
}

// NewRandomNode draws every parameter from policy using rng. A zero Policy
// means DefaultPolicy.
func NewRandomNode(name string, rng Random, policy Policy) (*Node, error) {
	if rng == nil {
		return nil, errors.New("node: random source is nil")
	}
	policy, err := policy.orDefault()
	if err != nil {
		return nil, err
	}
	return newRandomNode(name, rng, policy), nil
}

// newRandomNode expects a validated policy.
func newRandomNode(name string, rng Random, policy Policy) *Node {
	colorFreq := randomIn(rng, policy.ColorFrequency)
	return &Node{
		ID:            nextNodeID(),
		Name:          name,
		Length:        policy.Length.draw(rng),
		Width:         policy.Width.draw(rng),
		RotationSpeed: randomIntIn(rng, policy.RotationSpeed),
		InitialAngle:  randomIn(rng, policy.InitialAngle),
		Color: ColorState{
			Previous:  randomColor(rng),
			Next:      randomColor(rng),
			Frequency: colorFreq,
			Window:    policy.ColorFrequency,
			rng:       rng,
		},
		NestedRotation: rng.Bool(policy.NestedRotation),
		Clockwise:      rng.Bool(policy.Clockwise),
	}
}

// NewDummy returns an invisible pivot node with fixed zero length.
func NewDummy(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name, Dummy: true}
}

// --- Drawing ---

// Draw resolves this node for the current frame and recurses into its
// children. parentX and parentY are the parent's tip in world space and
// parentAngle is the reference angle in degrees.
func (n *Node) Draw(f *Frame, parentX, parentY, parentAngle float64) {
	angle := n.Angle(parentAngle, f.Elapsed)
	length := n.Length.Value(f.Elapsed)

	tip := segmentTransform(parentX, parentY, angle*math.Pi/180, length).Apply(Origin)
	x, y := tip.X(), tip.Y()

	stroke := n.Color.Update(f.Delta)
	width := math.Max(n.Width.Value(f.Elapsed), 1)

	if !n.Dummy && n.hasLast && f.Sink != nil {
		f.Sink.DrawSegment(Segment{
			X1: n.lastX, Y1: n.lastY,
			X2: x, Y2: y,
			Width: width,
			Color: stroke,
		})
		f.segments++
	}
	n.lastX, n.lastY = x, y
	n.hasLast = true

	childAngle := parentAngle
	if n.NestedRotation {
		childAngle = angle
	}
	for _, child := range n.children {
		child.Draw(f, x, y, childAngle)
	}
}

// Angle returns the node's absolute angle in degrees at the given elapsed
// time, relative to parentAngle.
func (n *Node) Angle(parentAngle, elapsed float64) float64 {
	sign := 1.0
	if n.Clockwise {
		sign = -1
	}
	return parentAngle + n.InitialAngle + sign*n.RotationSpeed*elapsed
}

// LastPosition returns the tip position stored by the previous Draw.
// ok is false before the first Draw and after ResetTrail.
func (n *Node) LastPosition() (x, y float64, ok bool) {
	return n.lastX, n.lastY, n.hasLast
}

// ResetTrail forgets the stored tip positions of this node and its
// descendants, so the next frame starts fresh trails without drawing a
// connecting segment.
func (n *Node) ResetTrail() {
	n.Walk(func(node *Node) bool {
		node.hasLast = false
		node.lastX, node.lastY = 0, 0
		return true
	})
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("pendulum: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("pendulum: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("pendulum: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildren detaches all children from this node.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Walk visits n and its descendants in depth-first pre-order, the same
// order Draw uses. Returning false from fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// At returns the node at the given pre-order index (0 is n itself), or nil
// if the index is out of range.
func (n *Node) At(index int) *Node {
	if index < 0 {
		return nil
	}
	var found *Node
	i := 0
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if i == index {
			found = node
			return false
		}
		i++
		return true
	})
	return found
}

// Depth returns the number of edges between n and the root of its tree.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
