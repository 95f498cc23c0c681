// Package pendulum renders an animated pendulum tree: a hierarchy of
// oscillating, rotating line segments drawn frame by frame onto a 2D
// surface.
//
// The package is split into a pure animation core and a set of drawing
// surfaces. The core knows nothing about windows or images; it only talks
// to a [Sink] that can clear the frame and draw a line segment.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the frame clock for you:
//
//	scene, err := pendulum.NewScene(pendulum.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := pendulum.Run(scene, pendulum.RunConfig{Title: "Pendulum"}); err != nil {
//		log.Fatal(err)
//	}
//
// For headless output (PNG and SVG files), use [Render].
//
// # Tree
//
// Every segment is a [Node]. [GenerateTree] builds a random labeled tree
// from a Prüfer sequence and orients it away from an invisible dummy root.
// Each frame the root's [Node.Draw] recurses depth first: a child starts
// where its parent ended, and inherits its parent's angle when
// NestedRotation is set.
//
// # Animation model
//
// Lengths and widths are [OscillatingProperty] values, sampled at the total
// elapsed time. Colors are a [ColorState] that blends between two targets
// and picks a new random target each cycle. Positions are propagated with
// 4x4 homogeneous [Matrix] transforms built on [mgl64].
//
// # Randomness
//
// All random defaults come from an injected [Random]. [NewRandom] returns a
// seeded source, so a scene built with the same seed animates identically.
//
// [mgl64]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl64
package pendulum
