package layout

import "fmt"

var _ Node = (*Button)(nil)

const (
	buttonPadX      = 20
	buttonPadY      = 5
	buttonMinWidth  = 75
	buttonMinHeight = 25
)

// Button is a push-button leaf. Without explicit dimensions it sizes to its
// label plus padding, never below 75x25. Labels do not wrap.
type Button struct {
	box
	label *Text
	id    int
	dims  [2]Dimension
}

// NewButton creates a button. width and height may be Auto.
func NewButton(label string, id int, width, height Dimension) *Button {
	return &Button{label: NewText(label, ""), id: id, dims: [2]Dimension{width, height}}
}

// ID returns the command identifier of the button.
func (b *Button) ID() int { return b.id }

// Label returns the button text.
func (b *Button) Label() string { return b.label.Text() }

// SetLabel replaces the button text.
func (b *Button) SetLabel(s string) { b.label.SetText(s) }

// natural returns the content-derived size on axis.
func (b *Button) natural(p *Pass, axis Axis) int {
	w, h := b.label.Extents(p)
	if axis == Horizontal {
		return max(w+buttonPadX, buttonMinWidth)
	}
	return max(h+buttonPadY, buttonMinHeight)
}

func (b *Button) QueryAxis(p *Pass, axis Axis) int {
	if d := b.dims[axis]; !d.IsAuto() {
		return d.Min
	}
	return b.natural(p, axis)
}

func (b *Button) DistributeAxis(p *Pass, axis Axis, available int) int {
	d := b.dims[axis]
	if d.IsAuto() {
		return b.setSize(axis, b.natural(p, axis))
	}
	return b.setSize(axis, d.Clamp(available))
}

func (b *Button) PositionAt(p *Pass, x, y int) {
	b.setPos(x, y)
	p.realize(b)
}

// PreferredWidth is reported only for Expand/Grow buttons whose label needs
// more than the dimension minimum; those may be squeezed back to it.
func (b *Button) PreferredWidth(p *Pass) (int, bool) {
	d := b.dims[Horizontal]
	if !d.IsVariable() {
		return 0, false
	}
	if w := b.natural(p, Horizontal); w > d.Min {
		return w, true
	}
	return 0, false
}

func (b *Button) TryShrinkWidth(p *Pass, target int) int {
	if d := b.dims[Horizontal]; d.IsVariable() {
		return max(target, d.Min)
	}
	return b.QueryAxis(p, Horizontal)
}

func (b *Button) AxisDimension(axis Axis) Dimension {
	return b.dims[axis]
}

func (b *Button) String() string {
	return fmt.Sprintf("Button(%q, id=%d)", b.label.Text(), b.id)
}
