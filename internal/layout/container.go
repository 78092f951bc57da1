package layout

import "fmt"

var _ Node = (*Container)(nil)

// GapBuilder creates one gap widget. It is called once per gap slot and the
// results are kept until the child count or gap policy changes.
type GapBuilder func() Node

// Container arranges its children in order along a primary axis and
// distributes the primary-axis space among them.
type Container struct {
	box
	axis     Axis
	children []Node
	align    [2]Align // indexed by Axis
	dims     [2]Dimension

	// Gap policy: a plain number, or a builder for gap widgets.
	gap        int
	gapBuilder GapBuilder

	// Materialized gap widgets and the interleaved layout list; rebuilt
	// on demand after invalidate.
	gapNodes []Node
	laidOut  []Node
}

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// NewContainer creates a container laying children out along axis.
func NewContainer(axis Axis, opts ...ContainerOption) *Container {
	c := &Container{axis: axis}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHorizontal creates a row container.
func NewHorizontal(opts ...ContainerOption) *Container {
	return NewContainer(Horizontal, opts...)
}

// NewVertical creates a column container.
func NewVertical(opts ...ContainerOption) *Container {
	return NewContainer(Vertical, opts...)
}

// --- Options ---

// WithChildren sets the children in layout order.
func WithChildren(children ...Node) ContainerOption {
	return func(c *Container) {
		c.children = append([]Node(nil), children...)
	}
}

// WithGap sets a plain gap of n between adjacent children.
func WithGap(n int) ContainerOption {
	return func(c *Container) {
		c.gap = max(0, n)
		c.gapBuilder = nil
	}
}

// WithGapBuilder materializes gaps as widgets built by fn.
func WithGapBuilder(fn GapBuilder) ContainerOption {
	return func(c *Container) {
		c.gap = 0
		c.gapBuilder = fn
	}
}

// WithGapDimension sets the gap from a Dimension. Fixed (or Auto) is a
// plain gap; Expand and Grow gaps become spacer widgets that compete for
// space like ordinary children.
func WithGapDimension(d Dimension) ContainerOption {
	return func(c *Container) {
		if !d.IsVariable() {
			WithGap(d.Min)(c)
			return
		}
		axis := c.axis
		WithGapBuilder(func() Node {
			dims := [2]Dimension{}
			dims[axis] = d
			dims[axis.Cross()] = Fixed(0)
			return NewSpacer(dims[Horizontal], dims[Vertical])
		})(c)
	}
}

// WithAlign sets the alignment factors along the primary and cross axes.
func WithAlign(primary, cross Align) ContainerOption {
	return func(c *Container) {
		c.align[c.axis] = primary.clamped()
		c.align[c.axis.Cross()] = cross.clamped()
	}
}

// WithWidth sets the container's own width policy.
func WithWidth(d Dimension) ContainerOption {
	return func(c *Container) {
		c.dims[Horizontal] = d
	}
}

// WithHeight sets the container's own height policy.
func WithHeight(d Dimension) ContainerOption {
	return func(c *Container) {
		c.dims[Vertical] = d
	}
}

// --- Accessors and mutators ---

// Axis returns the primary axis.
func (c *Container) Axis() Axis { return c.axis }

// Align returns the alignment factor on axis.
func (c *Container) Align(axis Axis) Align { return c.align[axis] }

// Gap returns the plain gap, or 0 when gaps are widgets.
func (c *Container) Gap() int { return c.gap }

// Children returns the children in layout order, without gap widgets.
func (c *Container) Children() []Node { return c.children }

// Add appends children.
func (c *Container) Add(children ...Node) {
	c.children = append(c.children, children...)
	c.invalidate(false)
}

// SetChildren replaces all children.
func (c *Container) SetChildren(children ...Node) {
	c.children = append([]Node(nil), children...)
	c.invalidate(false)
}

// SetGap switches to a plain gap.
func (c *Container) SetGap(n int) {
	WithGap(n)(c)
	c.invalidate(true)
}

// SetGapBuilder switches to widget gaps built by fn.
func (c *Container) SetGapBuilder(fn GapBuilder) {
	WithGapBuilder(fn)(c)
	c.invalidate(true)
}

// SetGapDimension switches the gap policy from a Dimension.
func (c *Container) SetGapDimension(d Dimension) {
	WithGapDimension(d)(c)
	c.invalidate(true)
}

// invalidate drops the interleaved list. Gap widgets are discarded only
// when the policy changed; a child count change reuses the existing ones.
func (c *Container) invalidate(policyChanged bool) {
	c.laidOut = nil
	if policyChanged {
		c.gapNodes = nil
	}
}

// layoutChildren returns the children interleaved with materialized gap
// widgets.
func (c *Container) layoutChildren() []Node {
	if c.laidOut != nil {
		return c.laidOut
	}
	if c.gapBuilder == nil || len(c.children) <= 1 {
		c.laidOut = c.children
		return c.laidOut
	}

	for len(c.gapNodes) < len(c.children)-1 {
		c.gapNodes = append(c.gapNodes, c.gapBuilder())
	}

	list := make([]Node, 0, 2*len(c.children)-1)
	list = append(list, c.children[0])
	for i, child := range c.children[1:] {
		list = append(list, c.gapNodes[i], child)
	}
	c.laidOut = list
	return c.laidOut
}

// plainGaps returns the total plain gap space between children.
func (c *Container) plainGaps() int {
	if c.gapBuilder != nil || len(c.children) <= 1 {
		return 0
	}
	return c.gap * (len(c.children) - 1)
}

// --- Node ---

// QueryAxis sums children along the primary axis (plus gaps) and takes the
// widest child across it. An explicit dimension raises the result to its
// minimum.
func (c *Container) QueryAxis(p *Pass, axis Axis) int {
	need := 0
	for _, child := range c.layoutChildren() {
		q := child.QueryAxis(p, axis)
		if axis == c.axis {
			need += q
		} else {
			need = max(need, q)
		}
	}
	if axis == c.axis {
		need += c.plainGaps()
	}
	if d := c.dims[axis]; !d.IsAuto() {
		need = max(need, d.Min)
	}
	return need
}

// DistributeAxis resolves the container's own size on axis, hands that
// space to the children and returns max(resolved, consumed). Auto-sized
// containers shrink-wrap their children on the primary axis.
func (c *Container) DistributeAxis(p *Pass, axis Axis, available int) int {
	own := c.dims[axis]
	space := available
	if !own.IsAuto() {
		space = own.Clamp(available)
	}

	if axis != c.axis {
		used := 0
		for _, child := range c.layoutChildren() {
			used = max(used, child.DistributeAxis(p, axis, space))
		}
		return c.setSize(axis, max(space, used))
	}

	used := c.distributePrimary(p, space)
	if own.IsAuto() {
		return c.setSize(axis, used)
	}
	return c.setSize(axis, max(space, used))
}

// PositionAt places the run of children along the primary axis, offset as
// a whole by the primary alignment, and aligns each child independently on
// the cross axis.
func (c *Container) PositionAt(p *Pass, x, y int) {
	c.setPos(x, y)
	p.realize(c)

	children := c.layoutChildren()
	if len(children) == 0 {
		return
	}

	primary, cross := c.axis, c.axis.Cross()
	run := c.plainGaps()
	for _, child := range children {
		run += child.Bounds().Size(primary)
	}

	origin := [2]int{x, y}
	cursor := origin[primary] + c.align[primary].offset(c.size[primary]-run)
	crossSize := c.size[cross]

	for _, child := range children {
		b := child.Bounds()
		var at [2]int
		at[primary] = cursor
		at[cross] = origin[cross] + c.align[cross].offset(crossSize-b.Size(cross))
		child.PositionAt(p, at[Horizontal], at[Vertical])
		cursor += b.Size(primary)
		if c.gapBuilder == nil {
			cursor += c.gap
		}
	}
}

// PreferredWidth is the width the children would take unwrapped. It is
// reported only when it exceeds the minimum, so that a nested container of
// text can be squeezed like a text leaf.
func (c *Container) PreferredWidth(p *Pass) (int, bool) {
	d := c.dims[Horizontal]
	if d.Kind == KindFixed {
		return 0, false
	}
	pref := 0
	for _, child := range c.layoutChildren() {
		w, ok := child.PreferredWidth(p)
		if !ok {
			w = child.QueryAxis(p, Horizontal)
		}
		if c.axis == Horizontal {
			pref += w
		} else {
			pref = max(pref, w)
		}
	}
	if c.axis == Horizontal {
		pref += c.plainGaps()
	}
	if !d.IsAuto() {
		pref = d.Clamp(pref)
	}
	if pref <= c.QueryAxis(p, Horizontal) {
		return 0, false
	}
	return pref, true
}

// TryShrinkWidth runs the shrink step against target without touching the
// children's layout state.
func (c *Container) TryShrinkWidth(p *Pass, target int) int {
	floor := c.QueryAxis(p, Horizontal)
	if c.dims[Horizontal].Kind == KindFixed {
		return floor
	}
	children := c.layoutChildren()

	if c.axis == Vertical {
		got := 0
		for _, child := range children {
			got = max(got, child.TryShrinkWidth(p, target))
		}
		return max(floor, got)
	}

	gaps := c.plainGaps()
	slots := classify(p, children, Horizontal)
	total := 0
	for _, s := range slots {
		total += s.allocated
	}
	if deficit := total + gaps - target; deficit > 0 {
		shrinkSlots(p, slots, deficit)
		total = 0
		for _, s := range slots {
			total += s.allocated
		}
	}
	return max(floor, total+gaps)
}

func (c *Container) AxisDimension(axis Axis) Dimension {
	return c.dims[axis]
}

func (c *Container) String() string {
	kind := "Horizontal"
	if c.axis == Vertical {
		kind = "Vertical"
	}
	if c.gapBuilder != nil {
		return fmt.Sprintf("%s(children=%d, gap=widget)", kind, len(c.children))
	}
	return fmt.Sprintf("%s(children=%d, gap=%d)", kind, len(c.children), c.gap)
}
