package layout

import "fmt"

var (
	_ Node = (*Padding)(nil)
	_ Node = (*Window)(nil)
)

// Padding surrounds a single child with fixed edges. Sizing policy and
// reflow are delegated to the child.
type Padding struct {
	box
	edges Edges
	child Node
}

// NewPadding wraps child with edges. child may be nil.
func NewPadding(edges Edges, child Node) *Padding {
	return &Padding{edges: edges, child: child}
}

// Edges returns the padding on each side.
func (pd *Padding) Edges() Edges { return pd.edges }

// Children returns the wrapped child, if any.
func (pd *Padding) Children() []Node {
	if pd.child == nil {
		return nil
	}
	return []Node{pd.child}
}

func (pd *Padding) QueryAxis(p *Pass, axis Axis) int {
	pad := pd.edges.Along(axis)
	if pd.child == nil {
		return pad
	}
	return pd.child.QueryAxis(p, axis) + pad
}

func (pd *Padding) DistributeAxis(p *Pass, axis Axis, available int) int {
	pad := pd.edges.Along(axis)
	if pd.child == nil {
		return pd.setSize(axis, pad)
	}
	got := pd.child.DistributeAxis(p, axis, max(0, available-pad))
	return pd.setSize(axis, got+pad)
}

func (pd *Padding) PositionAt(p *Pass, x, y int) {
	pd.setPos(x, y)
	p.realize(pd)
	if pd.child != nil {
		pd.child.PositionAt(p, x+pd.edges.Left, y+pd.edges.Top)
	}
}

func (pd *Padding) PreferredWidth(p *Pass) (int, bool) {
	if pd.child == nil {
		return 0, false
	}
	w, ok := pd.child.PreferredWidth(p)
	if !ok {
		return 0, false
	}
	return w + pd.edges.Horizontal(), true
}

func (pd *Padding) TryShrinkWidth(p *Pass, target int) int {
	pad := pd.edges.Horizontal()
	if pd.child == nil {
		return pad
	}
	return pd.child.TryShrinkWidth(p, target-pad) + pad
}

func (pd *Padding) AxisDimension(axis Axis) Dimension {
	if pd.child == nil {
		return Auto()
	}
	d := pd.child.AxisDimension(axis)
	if d.IsAuto() {
		return d
	}
	pad := pd.edges.Along(axis)
	d.Min += pad
	if d.HasMax || d.Kind == KindFixed {
		d.Max += pad
	}
	return d
}

func (pd *Padding) String() string {
	e := pd.edges
	return fmt.Sprintf("Padding(%d, %d, %d, %d)", e.Top, e.Right, e.Bottom, e.Left)
}

// Window is the root wrapper handed to the native window. It passes
// everything through to its child.
type Window struct {
	box
	child Node
}

// NewWindow wraps child as the top-level node.
func NewWindow(child Node) *Window {
	return &Window{child: child}
}

// Children returns the wrapped child, if any.
func (w *Window) Children() []Node {
	if w.child == nil {
		return nil
	}
	return []Node{w.child}
}

func (w *Window) QueryAxis(p *Pass, axis Axis) int {
	if w.child == nil {
		return 0
	}
	return w.child.QueryAxis(p, axis)
}

func (w *Window) DistributeAxis(p *Pass, axis Axis, available int) int {
	if w.child == nil {
		return w.setSize(axis, max(0, available))
	}
	// The window always spans what it was given, or more on overflow.
	return w.setSize(axis, max(available, w.child.DistributeAxis(p, axis, available)))
}

func (w *Window) PositionAt(p *Pass, x, y int) {
	w.setPos(x, y)
	p.realize(w)
	if w.child != nil {
		w.child.PositionAt(p, x, y)
	}
}

func (w *Window) PreferredWidth(p *Pass) (int, bool) {
	if w.child == nil {
		return 0, false
	}
	return w.child.PreferredWidth(p)
}

func (w *Window) TryShrinkWidth(p *Pass, target int) int {
	if w.child == nil {
		return 0
	}
	return w.child.TryShrinkWidth(p, target)
}

func (w *Window) AxisDimension(axis Axis) Dimension {
	if w.child == nil {
		return Auto()
	}
	return w.child.AxisDimension(axis)
}

func (w *Window) String() string {
	return "Window"
}
