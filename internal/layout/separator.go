package layout

import "fmt"

var _ Node = (*SeparatorLine)(nil)

// DefaultSeparatorThickness is the thickness of a separator line when none
// is given.
const DefaultSeparatorThickness = 2

// SeparatorLine is a rule drawn along axis. It requests no length, stretches
// to whatever length it is offered and keeps its thickness across the axis.
// An explicit length is honoured but never exceeds the space offered.
type SeparatorLine struct {
	box
	fixedWidth
	axis      Axis
	thickness int
	length    Dimension
}

// NewSeparatorLine creates a separator along axis. A thickness <= 0 selects
// DefaultSeparatorThickness.
func NewSeparatorLine(axis Axis, thickness int, length Dimension) *SeparatorLine {
	if thickness <= 0 {
		thickness = DefaultSeparatorThickness
	}
	return &SeparatorLine{axis: axis, thickness: thickness, length: length}
}

// Axis returns the direction the line runs in.
func (s *SeparatorLine) Axis() Axis { return s.axis }

// Thickness returns the line thickness across its axis.
func (s *SeparatorLine) Thickness() int { return s.thickness }

func (s *SeparatorLine) QueryAxis(_ *Pass, axis Axis) int {
	if axis != s.axis {
		return s.thickness
	}
	return s.length.Min
}

func (s *SeparatorLine) DistributeAxis(_ *Pass, axis Axis, available int) int {
	if axis != s.axis {
		return s.setSize(axis, s.thickness)
	}
	available = max(0, available)
	switch s.length.Kind {
	case KindAuto:
		return s.setSize(axis, available)
	case KindFixed:
		return s.setSize(axis, min(s.length.Min, available))
	default:
		return s.setSize(axis, s.length.Clamp(available))
	}
}

func (s *SeparatorLine) PositionAt(p *Pass, x, y int) {
	s.setPos(x, y)
	p.realize(s)
}

func (s *SeparatorLine) TryShrinkWidth(p *Pass, _ int) int {
	return s.QueryAxis(p, Horizontal)
}

func (s *SeparatorLine) AxisDimension(axis Axis) Dimension {
	if axis != s.axis {
		return Auto()
	}
	return s.length
}

func (s *SeparatorLine) String() string {
	return fmt.Sprintf("SeparatorLine(%s, thickness=%d)", s.axis, s.thickness)
}
