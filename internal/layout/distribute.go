package layout

import (
	"math"
	"slices"
)

// slot is the working state of one child during primary-axis distribution.
type slot struct {
	node      Node
	dim       Dimension
	minimum   int
	preferred int
	allocated int
	shrinks   bool
}

// headroom is how much the slot can still grow.
func (s *slot) headroom() int {
	if mx, ok := s.dim.Maxim(); ok {
		return max(0, mx-s.allocated)
	}
	return math.MaxInt
}

// distributePrimary splits space among the container's children along its
// primary axis and returns the total consumed, including plain gaps.
func (c *Container) distributePrimary(p *Pass, space int) int {
	children := c.layoutChildren()
	if len(children) == 0 {
		return 0
	}
	gaps := c.plainGaps()
	slots := classify(p, children, c.axis)

	total := 0
	for _, s := range slots {
		total += s.allocated
	}
	extra := space - gaps - total

	if extra < 0 {
		shrinkSlots(p, slots, -extra)
		total = 0
		for _, s := range slots {
			total += s.allocated
		}
		extra = space - gaps - total
	}
	if extra > 0 {
		growSlots(p, slots, extra)
	}

	used := gaps
	for _, s := range slots {
		used += s.node.DistributeAxis(p, c.axis, s.allocated)
	}
	p.log.Debug("distribute", "container", c, "axis", c.axis, "space", space, "used", used)
	return used
}

// classify gathers each child's request. A child without an explicit
// dimension is treated as fixed at its minimum request. Only the horizontal
// axis reflows, so preferred widths and shrinking apply there alone.
func classify(p *Pass, children []Node, axis Axis) []*slot {
	slots := make([]*slot, 0, len(children))
	for _, child := range children {
		s := &slot{node: child, minimum: child.QueryAxis(p, axis)}
		s.dim = child.AxisDimension(axis)
		if s.dim.IsAuto() {
			s.dim = Dimension{Kind: KindFixed, Min: s.minimum, Max: s.minimum, HasMax: true}
		}
		s.preferred = s.minimum
		if axis == Horizontal {
			if w, ok := child.PreferredWidth(p); ok && w > s.minimum {
				s.preferred = w
				s.shrinks = true
			}
		}
		s.allocated = s.preferred
		slots = append(slots, s)
	}
	return slots
}

// growSlots hands extra to Expand and Grow slots. Grow slots rise in tiers,
// smallest allocation first; every Expand slot takes part in every tier. A
// slot that reaches its maximum leaves the pool. Pixels that do not divide
// evenly go one each to the earliest participants, so all of extra is used
// as long as some participant is unbounded.
func growSlots(p *Pass, slots []*slot, extra int) {
	var pool []*slot
	for _, s := range slots {
		if s.dim.IsVariable() && s.headroom() > 0 {
			pool = append(pool, s)
		}
	}

	for round := 0; extra > 0 && len(pool) > 0; round++ {
		// Lowest Grow tier, and the level of the next tier above it.
		level, next := math.MaxInt, math.MaxInt
		for _, s := range pool {
			if s.dim.Kind == KindGrow {
				level = min(level, s.allocated)
			}
		}
		for _, s := range pool {
			if s.dim.Kind == KindGrow && s.allocated > level {
				next = min(next, s.allocated)
			}
		}

		var participants []*slot
		step := math.MaxInt
		if next != math.MaxInt {
			step = next - level
		}
		for _, s := range pool {
			if s.dim.Kind == KindExpand || s.allocated == level {
				participants = append(participants, s)
				step = min(step, s.headroom())
			}
		}

		n := len(participants)
		if step != math.MaxInt && step*n <= extra {
			for _, s := range participants {
				s.allocated += step
			}
			extra -= step * n
		} else {
			per, rem := extra/n, extra%n
			for i, s := range participants {
				s.allocated += per
				if i < rem {
					s.allocated++
				}
			}
			extra = 0
		}
		p.log.Debug("grow", "round", round, "participants", n, "step", step, "left", extra)

		pool = slices.DeleteFunc(pool, func(s *slot) bool {
			return s.headroom() == 0
		})
	}
}

// shrinkSlots reclaims deficit from reflowable slots, largest allocation
// first. Each slot is asked what width it can actually reach, so a round may
// reclaim more or less than requested. A slot that cannot shrink further or
// reaches its minimum leaves the pool.
func shrinkSlots(p *Pass, slots []*slot, deficit int) {
	var pool []*slot
	for _, s := range slots {
		if s.shrinks && s.allocated > s.minimum {
			pool = append(pool, s)
		}
	}

	for round := 0; deficit > 0 && len(pool) > 0; round++ {
		level, next := 0, -1
		for _, s := range pool {
			level = max(level, s.allocated)
		}
		var participants []*slot
		for _, s := range pool {
			if s.allocated == level {
				participants = append(participants, s)
			} else {
				next = max(next, s.allocated)
			}
		}

		n := len(participants)
		var per int
		if next >= 0 && (level-next)*n <= deficit {
			per = level - next
		} else {
			per = max(1, deficit/n)
		}

		for _, s := range participants {
			if deficit <= 0 {
				break
			}
			old := s.allocated
			got := max(s.node.TryShrinkWidth(p, old-per), s.minimum)
			if got >= old {
				s.shrinks = false
				continue
			}
			s.allocated = got
			deficit -= old - got
			if got <= s.minimum {
				s.shrinks = false
			}
		}
		p.log.Debug("shrink", "round", round, "participants", n, "step", per, "left", deficit)

		pool = slices.DeleteFunc(pool, func(s *slot) bool {
			return !s.shrinks
		})
	}
}
