// layout.go re-exports the engine from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Node is an element of the layout tree.
type Node = layout.Node

// Parent is implemented by nodes that own children.
type Parent = layout.Parent

// Axis selects width (Horizontal) or height (Vertical).
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Align is a per-axis alignment factor in [0, 1].
type Align = layout.Align

const (
	AlignStart  = layout.AlignStart
	AlignCenter = layout.AlignCenter
	AlignEnd    = layout.AlignEnd
)

// Dimension is the per-axis sizing policy of a node. The zero value is Auto.
type Dimension = layout.Dimension

// Kind specifies how a Dimension is interpreted.
type Kind = layout.Kind

const (
	KindAuto   = layout.KindAuto
	KindFixed  = layout.KindFixed
	KindExpand = layout.KindExpand
	KindGrow   = layout.KindGrow
)

// ConstructionError reports an invalid Dimension.
type ConstructionError = layout.ConstructionError

// ErrInvalidDimension matches every ConstructionError via errors.Is.
var ErrInvalidDimension = layout.ErrInvalidDimension

// Auto returns the absent dimension.
func Auto() Dimension { return layout.Auto() }

// Fixed returns a dimension of exactly v. It panics if v is negative.
func Fixed(v int) Dimension { return layout.Fixed(v) }

// Expand returns an unbounded Expand dimension.
func Expand(minimum int) Dimension { return layout.Expand(minimum) }

// ExpandRange returns an Expand dimension capped at maximum.
func ExpandRange(minimum, maximum int) Dimension { return layout.ExpandRange(minimum, maximum) }

// Grow returns an unbounded Grow dimension.
func Grow(minimum int) Dimension { return layout.Grow(minimum) }

// GrowRange returns a Grow dimension capped at maximum.
func GrowRange(minimum, maximum int) Dimension { return layout.GrowRange(minimum, maximum) }

// NewDimension validates and builds a Dimension.
func NewDimension(kind Kind, minimum, maximum int, hasMax bool) (Dimension, error) {
	return layout.NewDimension(kind, minimum, maximum, hasMax)
}

// DimensionOf normalizes a number, Dimension or nil into a Dimension.
func DimensionOf(v any) (Dimension, error) { return layout.DimensionOf(v) }

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect { return layout.NewRect(x, y, width, height) }

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges { return layout.EdgeSymmetric(v, h) }

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges { return layout.EdgeTRBL(t, r, b, l) }

// Measurement.
type (
	Font              = layout.Font
	FontMetrics       = layout.FontMetrics
	Measurer          = layout.Measurer
	MeasurerFuncs     = layout.MeasurerFuncs
	HeuristicMeasurer = layout.HeuristicMeasurer
)

// Engine runs layout passes.
type Engine = layout.Engine

// EngineOption configures an Engine.
type EngineOption = layout.EngineOption

// Pass holds state scoped to one layout traversal.
type Pass = layout.Pass

// Realizer receives each node's final rectangle.
type Realizer = layout.Realizer

// RealizerFunc adapts a function to a Realizer.
type RealizerFunc = layout.RealizerFunc

var (
	NewEngine    = layout.NewEngine
	WithMeasurer = layout.WithMeasurer
	WithRealizer = layout.WithRealizer
	WithLogger   = layout.WithLogger
	NewPass      = layout.NewPass
	Walk         = layout.Walk
)

// Containers.
type (
	Container       = layout.Container
	ContainerOption = layout.ContainerOption
	GapBuilder      = layout.GapBuilder
)

var (
	NewContainer     = layout.NewContainer
	NewHorizontal    = layout.NewHorizontal
	NewVertical      = layout.NewVertical
	WithChildren     = layout.WithChildren
	WithGap          = layout.WithGap
	WithGapBuilder   = layout.WithGapBuilder
	WithGapDimension = layout.WithGapDimension
	WithAlign        = layout.WithAlign
	WithWidth        = layout.WithWidth
	WithHeight       = layout.WithHeight
)

// Leaves and wrappers.
type (
	Text          = layout.Text
	Link          = layout.Link
	Button        = layout.Button
	Edit          = layout.Edit
	Spacer        = layout.Spacer
	SeparatorLine = layout.SeparatorLine
	Padding       = layout.Padding
	Window        = layout.Window
)

var (
	NewText          = layout.NewText
	NewLink          = layout.NewLink
	NewButton        = layout.NewButton
	NewEdit          = layout.NewEdit
	NewSpacer        = layout.NewSpacer
	NewSeparatorLine = layout.NewSeparatorLine
	NewPadding       = layout.NewPadding
	NewWindow        = layout.NewWindow
)

// DefaultSeparatorThickness is the thickness of a separator line when none
// is given.
const DefaultSeparatorThickness = layout.DefaultSeparatorThickness
