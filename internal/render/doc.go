// Package render turns a laid-out tree into something a person can look at:
// a character canvas scaled from pixels to terminal cells, a table of node
// rectangles and a Graphviz diagram of the tree.
//
// Nothing here takes part in layout. Everything reads the geometry a
// completed pass left on the nodes, either through a [Recorder] handed to
// the engine as its realizer or through [Snapshot] after the pass.
package render
