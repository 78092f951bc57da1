package layout

import "fmt"

var _ Node = (*Edit)(nil)

const (
	editPadX = 20
	editPadY = 10
)

// Edit is a text-entry leaf. A multiline edit wraps its content and may be
// squeezed below its preferred width; a single-line edit never reflows.
type Edit struct {
	box
	content   *Text
	multiline bool
	readOnly  bool
	dims      [2]Dimension
}

// NewEdit creates an edit control. width and height may be Auto.
func NewEdit(text string, multiline, readOnly bool, width, height Dimension) *Edit {
	return &Edit{
		content:   NewText(text, ""),
		multiline: multiline,
		readOnly:  readOnly,
		dims:      [2]Dimension{width, height},
	}
}

// Text returns the edit's content.
func (e *Edit) Text() string { return e.content.Text() }

// SetText replaces the edit's content.
func (e *Edit) SetText(s string) { e.content.SetText(s) }

// Multiline reports whether the edit wraps its content.
func (e *Edit) Multiline() bool { return e.multiline }

// ReadOnly reports whether the edit rejects input.
func (e *Edit) ReadOnly() bool { return e.readOnly }

func (e *Edit) QueryAxis(p *Pass, axis Axis) int {
	if d := e.dims[axis]; !d.IsAuto() {
		return d.Min
	}
	if axis == Vertical {
		return e.content.QueryAxis(p, Vertical) + editPadY
	}
	if e.multiline {
		return e.content.QueryAxis(p, Horizontal) + editPadX
	}
	w, _ := e.content.Extents(p)
	return w + editPadX
}

func (e *Edit) DistributeAxis(p *Pass, axis Axis, available int) int {
	d := e.dims[axis]
	if axis == Vertical {
		if d.IsAuto() {
			return e.setSize(axis, e.content.QueryAxis(p, Vertical)+editPadY)
		}
		return e.setSize(axis, d.Clamp(available))
	}

	width := e.QueryAxis(p, Horizontal)
	switch {
	case !d.IsAuto():
		width = d.Clamp(available)
	case e.multiline:
		width = max(width, available)
	}

	inner := max(0, width-editPadX)
	if e.multiline {
		got := e.content.DistributeAxis(p, Horizontal, inner)
		if d.IsAuto() {
			width = got + editPadX
		}
	} else {
		w, _ := e.content.Extents(p)
		e.content.DistributeAxis(p, Horizontal, w)
	}
	return e.setSize(axis, width)
}

func (e *Edit) PositionAt(p *Pass, x, y int) {
	e.setPos(x, y)
	p.realize(e)
}

// PreferredWidth is reported for multiline edits that are auto-sized or
// whose content needs more than their Expand/Grow minimum.
func (e *Edit) PreferredWidth(p *Pass) (int, bool) {
	if !e.multiline {
		return 0, false
	}
	w, _ := e.content.Extents(p)
	preferred := w + editPadX

	d := e.dims[Horizontal]
	switch {
	case d.IsAuto():
		return preferred, true
	case d.IsVariable() && preferred > d.Min:
		return preferred, true
	}
	return 0, false
}

func (e *Edit) TryShrinkWidth(p *Pass, target int) int {
	d := e.dims[Horizontal]
	switch {
	case d.IsVariable():
		return max(target, d.Min)
	case d.IsAuto() && e.multiline:
		return e.content.TryShrinkWidth(p, target-editPadX) + editPadX
	}
	return e.QueryAxis(p, Horizontal)
}

func (e *Edit) AxisDimension(axis Axis) Dimension {
	return e.dims[axis]
}

func (e *Edit) String() string {
	return fmt.Sprintf("Edit(%q, multiline=%t)", e.content.Text(), e.multiline)
}
