package layout

// Node is an element of the layout tree. Every node is exclusively owned by
// its parent. The computed geometry returned by Bounds is valid only after a
// completed pass.
type Node interface {
	// QueryAxis returns the minimum space the node needs on axis, computed
	// bottom-up from its children. It is recomputed on every call.
	QueryAxis(p *Pass, axis Axis) int

	// DistributeAxis decides the node's actual size on axis given the space
	// available, stores it and returns it. The result may exceed available;
	// that is how overflow is reported.
	DistributeAxis(p *Pass, axis Axis, available int) int

	// PositionAt stores the node's top-left corner and positions children.
	PositionAt(p *Pass, x, y int)

	// PreferredWidth reports the width the node would take without reflow.
	// ok is true only for nodes able to reflow below it (wrappable text).
	PreferredWidth(p *Pass) (width int, ok bool)

	// TryShrinkWidth attempts to reflow to target and returns the width
	// actually achieved, which is never below the node's minimum and may
	// exceed target when the content cannot be split further.
	TryShrinkWidth(p *Pass, target int) int

	// AxisDimension returns the explicit sizing policy on axis, or Auto.
	AxisDimension(axis Axis) Dimension

	// Bounds returns the geometry computed by the last pass.
	Bounds() Rect
}

// Parent is implemented by nodes that own children.
type Parent interface {
	Children() []Node
}

// Walk visits n and its descendants depth-first in layout order. Gap
// spacers materialized by containers are not visited.
func Walk(n Node, fn func(n Node, depth int)) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int)) {
	if n == nil {
		return
	}
	fn(n, depth)
	if p, ok := n.(Parent); ok {
		for _, c := range p.Children() {
			walk(c, depth+1, fn)
		}
	}
}

// box stores the computed size and position shared by all nodes.
type box struct {
	size [2]int
	pos  [2]int
}

// Bounds returns the geometry computed by the last pass.
func (b *box) Bounds() Rect {
	return Rect{X: b.pos[Horizontal], Y: b.pos[Vertical], Width: b.size[Horizontal], Height: b.size[Vertical]}
}

func (b *box) setSize(axis Axis, v int) int {
	b.size[axis] = v
	return v
}

func (b *box) setPos(x, y int) {
	b.pos[Horizontal] = x
	b.pos[Vertical] = y
}

// fixedWidth is embedded by leaves that cannot reflow.
type fixedWidth struct{}

func (fixedWidth) PreferredWidth(*Pass) (int, bool) { return 0, false }
