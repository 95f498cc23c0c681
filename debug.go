package pendulum

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	frame        int
	drawTime     time.Duration
	segmentCount int
	elapsed      float64
}

// debugLog prints timing and segment stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[pendulum] frame %d | draw: %v | segments: %d | elapsed: %.3fs | speed: %.2f\n",
		stats.frame, stats.drawTime, stats.segmentCount, stats.elapsed, s.clock.EffectiveSpeed())
}

// debugLogTree prints a one-line summary of a freshly built tree.
func debugLogTree(root *Node) {
	maxDepth := 0
	root.Walk(func(n *Node) bool {
		if d := n.Depth(); d > maxDepth {
			maxDepth = d
		}
		return true
	})
	_, _ = fmt.Fprintf(os.Stderr, "[pendulum] tree: %d nodes | depth: %d | root %q\n",
		root.Count(), maxDepth, root.Name)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	if depth := n.Depth() + 1; depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[pendulum] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[pendulum] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
