package layout

import (
	"fmt"
	"math"
)

// Kind specifies how a Dimension is interpreted.
type Kind uint8

const (
	KindAuto   Kind = iota // No explicit sizing; behaves as Fixed at the content request
	KindFixed              // Always exactly Min
	KindExpand             // Grows in lock-step with every other Expand on the axis
	KindGrow               // Grows in tiers, smallest allocation first
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "Fixed"
	case KindExpand:
		return "Expand"
	case KindGrow:
		return "Grow"
	default:
		return "Auto"
	}
}

// Dimension is the per-axis sizing policy of a node. The zero value is
// Auto, meaning "no explicit dimension".
type Dimension struct {
	Kind   Kind
	Min    int
	Max    int
	HasMax bool
}

// Auto returns the absent dimension.
func Auto() Dimension {
	return Dimension{}
}

// NewDimension validates and builds a Dimension. For KindFixed, min is the
// value and max is ignored.
func NewDimension(kind Kind, min, max int, hasMax bool) (Dimension, error) {
	switch kind {
	case KindAuto:
		return Dimension{}, nil
	case KindFixed:
		if min < 0 {
			return Dimension{}, &ConstructionError{Kind: kind, Field: "value", Value: min, Reason: "must be non-negative"}
		}
		return Dimension{Kind: KindFixed, Min: min, Max: min, HasMax: true}, nil
	case KindExpand, KindGrow:
		if min < 0 {
			return Dimension{}, &ConstructionError{Kind: kind, Field: "minimum", Value: min, Reason: "must be non-negative"}
		}
		if hasMax && max < min {
			return Dimension{}, &ConstructionError{Kind: kind, Field: "maximum", Value: max,
				Reason: fmt.Sprintf("must not be less than minimum %d", min)}
		}
		d := Dimension{Kind: kind, Min: min}
		if hasMax {
			d.Max, d.HasMax = max, true
		}
		return d, nil
	default:
		return Dimension{}, &ConstructionError{Kind: kind, Field: "kind", Value: uint8(kind), Reason: "unknown kind"}
	}
}

func mustDimension(d Dimension, err error) Dimension {
	if err != nil {
		panic(err)
	}
	return d
}

// Fixed returns a dimension of exactly v. It panics with a
// *ConstructionError if v is negative.
func Fixed(v int) Dimension {
	return mustDimension(NewDimension(KindFixed, v, 0, false))
}

// Expand returns an unbounded Expand dimension.
func Expand(minimum int) Dimension {
	return mustDimension(NewDimension(KindExpand, minimum, 0, false))
}

// ExpandRange returns an Expand dimension capped at maximum.
func ExpandRange(minimum, maximum int) Dimension {
	return mustDimension(NewDimension(KindExpand, minimum, maximum, true))
}

// Grow returns an unbounded Grow dimension.
func Grow(minimum int) Dimension {
	return mustDimension(NewDimension(KindGrow, minimum, 0, false))
}

// GrowRange returns a Grow dimension capped at maximum.
func GrowRange(minimum, maximum int) Dimension {
	return mustDimension(NewDimension(KindGrow, minimum, maximum, true))
}

// DimensionOf normalizes v into a Dimension. Numeric values become Fixed,
// an existing Dimension is returned unchanged and nil yields Auto.
func DimensionOf(v any) (Dimension, error) {
	switch x := v.(type) {
	case nil:
		return Dimension{}, nil
	case Dimension:
		return x, nil
	case *Dimension:
		if x == nil {
			return Dimension{}, nil
		}
		return *x, nil
	case int:
		return NewDimension(KindFixed, x, 0, false)
	case int8:
		return NewDimension(KindFixed, int(x), 0, false)
	case int16:
		return NewDimension(KindFixed, int(x), 0, false)
	case int32:
		return NewDimension(KindFixed, int(x), 0, false)
	case int64:
		return NewDimension(KindFixed, int(x), 0, false)
	case uint:
		return NewDimension(KindFixed, int(x), 0, false)
	case uint8:
		return NewDimension(KindFixed, int(x), 0, false)
	case uint16:
		return NewDimension(KindFixed, int(x), 0, false)
	case uint32:
		return NewDimension(KindFixed, int(x), 0, false)
	case uint64:
		if x > math.MaxInt32 {
			return Dimension{}, &ConstructionError{Kind: KindFixed, Field: "value", Value: x, Reason: "out of range"}
		}
		return NewDimension(KindFixed, int(x), 0, false)
	case float32:
		return fixedFromFloat(float64(x))
	case float64:
		return fixedFromFloat(x)
	default:
		return Dimension{}, &ConstructionError{Kind: KindFixed, Field: "value", Value: v,
			Reason: fmt.Sprintf("expected a number or Dimension, got %T", v)}
	}
}

func fixedFromFloat(f float64) (Dimension, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return Dimension{}, &ConstructionError{Kind: KindFixed, Field: "value", Value: f, Reason: "not a finite number"}
	}
	return NewDimension(KindFixed, int(math.Round(f)), 0, false)
}

// IsAuto reports whether no explicit dimension was given.
func (d Dimension) IsAuto() bool {
	return d.Kind == KindAuto
}

// IsVariable reports whether the dimension can grow beyond its minimum.
func (d Dimension) IsVariable() bool {
	return d.Kind == KindExpand || d.Kind == KindGrow
}

// Minim returns the minimum size.
func (d Dimension) Minim() int {
	return d.Min
}

// Maxim returns the maximum size and whether one is set.
func (d Dimension) Maxim() (int, bool) {
	if d.Kind == KindFixed {
		return d.Min, true
	}
	return d.Max, d.HasMax
}

// Clamp restricts v to the dimension's bounds. Fixed ignores v entirely.
func (d Dimension) Clamp(v int) int {
	switch d.Kind {
	case KindFixed:
		return d.Min
	case KindAuto:
		return v
	}
	if v < d.Min {
		v = d.Min
	}
	if d.HasMax && v > d.Max {
		v = d.Max
	}
	return v
}

func (d Dimension) String() string {
	switch d.Kind {
	case KindFixed:
		return fmt.Sprintf("Fixed(%d)", d.Min)
	case KindExpand, KindGrow:
		switch {
		case d.HasMax:
			return fmt.Sprintf("%s(minimum=%d, maximum=%d)", d.Kind, d.Min, d.Max)
		case d.Min != 0:
			return fmt.Sprintf("%s(minimum=%d)", d.Kind, d.Min)
		default:
			return d.Kind.String() + "()"
		}
	default:
		return "Auto"
	}
}
