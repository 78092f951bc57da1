// Package cli implements the flex command-line interface.
//
// The commands load a scene (a built-in name or a TOML file), run the
// layout engine over it and show the result:
//   - layout: print every node's rectangle, optionally with a drawing
//   - sweep: lay the scene out at a range of widths and compare
//   - preview: interactive terminal preview that reflows on resize
//   - tree: export the laid-out tree as Graphviz DOT or SVG
//   - scenes: list the built-in scenes
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes the engine's distribution rounds. Loggers are passed through
// context.Context. Setting FLEX_DEBUG sends engine traces to a file instead.
package cli
