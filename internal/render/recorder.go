package render

import (
	"sync"

	"github.com/grindlemire/go-flex/internal/layout"
)

var _ layout.Realizer = (*Recorder)(nil)

// Entry is one node and the rectangle it was given.
type Entry struct {
	Node  layout.Node
	Rect  layout.Rect
	Depth int
}

// Recorder is a realizer that keeps every rectangle it is handed, in
// realization order. Parents are always realized before their children.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Realize records n at r.
func (r *Recorder) Realize(n layout.Node, rect layout.Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Node: n, Rect: rect})
}

// Entries returns a copy of what has been recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Reset forgets all entries, typically before the next pass.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
}

// Snapshot walks root depth-first and returns each node with its current
// bounds and depth.
func Snapshot(root layout.Node) []Entry {
	var out []Entry
	layout.Walk(root, func(n layout.Node, depth int) {
		out = append(out, Entry{Node: n, Rect: n.Bounds(), Depth: depth})
	})
	return out
}
