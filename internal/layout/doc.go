// Package layout implements a flexbox-style layout engine over a tree of
// widgets measured in pixels.
//
// Every node declares a per-axis [Dimension] (Fixed, Expand, Grow, or none)
// and takes part in a three-phase pass: a bottom-up query of minimum sizes,
// a top-down distribution of the available space (width first, then height,
// since wrapped text only knows its height once its width is fixed), and a
// final positioning step. [Container] runs the distribution algorithm for
// its children: reflowable children shrink first when space is short, then
// leftover space goes to Expand and Grow children.
//
// Text width comes from an injected [Measurer]; results are memoized for
// the duration of one [Pass] only. The entry point is [Engine.Layout].
package layout
