package layout

import "fmt"

var _ Node = (*Spacer)(nil)

// Spacer is an empty leaf that occupies space according to its dimensions.
// A spacer with an Expand or Grow dimension absorbs leftover space, which is
// how "space-between" layouts are built.
type Spacer struct {
	box
	fixedWidth
	dims [2]Dimension
}

// NewSpacer creates a spacer with the given width and height.
func NewSpacer(width, height Dimension) *Spacer {
	return &Spacer{dims: [2]Dimension{width, height}}
}

// QueryAxis returns the dimension minimum.
func (s *Spacer) QueryAxis(_ *Pass, axis Axis) int {
	return s.dims[axis].Min
}

// DistributeAxis resolves the dimension against available space.
func (s *Spacer) DistributeAxis(_ *Pass, axis Axis, available int) int {
	d := s.dims[axis]
	if d.IsAuto() {
		return s.setSize(axis, 0)
	}
	return s.setSize(axis, d.Clamp(available))
}

func (s *Spacer) PositionAt(p *Pass, x, y int) {
	s.setPos(x, y)
	p.realize(s)
}

func (s *Spacer) TryShrinkWidth(p *Pass, _ int) int {
	return s.QueryAxis(p, Horizontal)
}

func (s *Spacer) AxisDimension(axis Axis) Dimension {
	return s.dims[axis]
}

func (s *Spacer) String() string {
	return fmt.Sprintf("Spacer(%s, %s)", s.dims[Horizontal], s.dims[Vertical])
}
