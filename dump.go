package pendulum

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	DisableMethods:          true,
	SortKeys:                true,
}

// NodeInfo is a flat, printable snapshot of one node's parameters.
type NodeInfo struct {
	Index          int
	Name           string
	Depth          int
	Dummy          bool
	Length         OscillatingProperty
	Width          OscillatingProperty
	RotationSpeed  float64
	InitialAngle   float64
	Clockwise      bool
	NestedRotation bool
	Color          [2]string
	ColorFrequency float64
	Children       int
}

// Describe returns a snapshot of every node in pre-order.
func Describe(root *Node) []NodeInfo {
	var infos []NodeInfo
	root.Walk(func(n *Node) bool {
		infos = append(infos, NodeInfo{
			Index:          len(infos),
			Name:           n.Name,
			Depth:          n.Depth() - root.Depth(),
			Dummy:          n.Dummy,
			Length:         n.Length,
			Width:          n.Width,
			RotationSpeed:  n.RotationSpeed,
			InitialAngle:   n.InitialAngle,
			Clockwise:      n.Clockwise,
			NestedRotation: n.NestedRotation,
			Color:          [2]string{n.Color.Previous.Hex(), n.Color.Next.Hex()},
			ColorFrequency: n.Color.Frequency,
			Children:       len(n.children),
		})
		return true
	})
	return infos
}

// DumpTree writes a human-readable dump of the tree's parameters.
func DumpTree(w io.Writer, root *Node) {
	spewConfig.Fdump(w, Describe(root))
}

// SDumpTree returns the dump as a string.
func SDumpTree(root *Node) string {
	return spewConfig.Sdump(Describe(root))
}
