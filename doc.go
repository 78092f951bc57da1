// Package flex lays out trees of native widgets with a flexbox-style model.
//
// Users import this single package for the complete public API: dimensions,
// containers, leaf widgets and the engine that runs layout passes.
//
// A pass queries every node for its minimum size, distributes the
// available width and then the available height top-down, and finally
// positions every node and hands its rectangle to a Realizer:
//
//	root := flex.NewWindow(flex.NewHorizontal(
//		flex.WithGap(10),
//		flex.WithChildren(
//			flex.NewButton("OK", 1, flex.Fixed(75), flex.Auto()),
//			flex.NewText("Some text that wraps when space runs out", ""),
//		),
//	))
//	flex.NewEngine(flex.WithRealizer(r)).Layout(root, 0, 0, 400, 300)
package flex
