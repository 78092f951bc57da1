package layout

// Axis selects one of the two independent layout dimensions.
type Axis uint8

const (
	Horizontal Axis = iota // Width; children placed left-to-right
	Vertical               // Height; children placed top-to-bottom
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Align is a per-axis alignment factor in [0, 1].
type Align float64

const (
	AlignStart  Align = 0
	AlignCenter Align = 0.5
	AlignEnd    Align = 1
)

// clamped restricts the factor to [0, 1].
func (a Align) clamped() Align {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// offset returns the share of leftover space placed before the aligned item.
// Negative leftover (overflow) never moves the item backwards.
func (a Align) offset(leftover int) int {
	if leftover <= 0 {
		return 0
	}
	return int(float64(leftover) * float64(a.clamped()))
}
