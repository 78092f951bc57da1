package layout

import (
	"io"

	"github.com/charmbracelet/log"
)

// Realizer receives each node's final rectangle once a pass has fixed it.
// It typically creates or moves a native control; a headless caller may
// record the rectangle or ignore it.
type Realizer interface {
	Realize(n Node, r Rect)
}

// RealizerFunc adapts a function to a Realizer.
type RealizerFunc func(n Node, r Rect)

func (f RealizerFunc) Realize(n Node, r Rect) { f(n, r) }

// Engine runs layout passes. It carries the injected measurement capability
// and realization callback so that no global state is involved; independent
// engines may run on independent trees concurrently.
type Engine struct {
	measurer Measurer
	realizer Realizer
	logger   *log.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithMeasurer injects the text measurement capability. A nil measurer
// selects the HeuristicMeasurer.
func WithMeasurer(m Measurer) EngineOption {
	return func(e *Engine) {
		e.measurer = m
	}
}

// WithRealizer sets the callback that receives final rectangles.
func WithRealizer(r Realizer) EngineOption {
	return func(e *Engine) {
		e.realizer = r
	}
}

// WithLogger sets the logger used for debug traces of distribution rounds.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.measurer == nil {
		e.measurer = HeuristicMeasurer{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// NewPass starts a pass with a fresh measurement memo.
func (e *Engine) NewPass() *Pass {
	return &Pass{
		measurer: e.measurer,
		realizer: e.realizer,
		log:      e.logger,
		widths:   make(map[measureKey]int),
		metrics:  make(map[Font]FontMetrics),
	}
}

// Layout runs a full pass over root: query, distribute width, distribute
// height, then position at (x, y). It returns the root's final rectangle,
// which is larger than (w, h) when the content overflows.
func (e *Engine) Layout(root Node, x, y, w, h int) Rect {
	if root == nil {
		return Rect{}
	}
	p := e.NewPass()

	minW := root.QueryAxis(p, Horizontal)
	minH := root.QueryAxis(p, Vertical)
	p.log.Debug("query", "min_width", minW, "min_height", minH, "width", w, "height", h)

	gotW := root.DistributeAxis(p, Horizontal, w)
	gotH := root.DistributeAxis(p, Vertical, h)
	if gotW > w || gotH > h {
		p.log.Debug("overflow", "width", gotW, "height", gotH, "available_width", w, "available_height", h)
	}

	root.PositionAt(p, x, y)
	return root.Bounds()
}

// Query returns the minimum size root needs, without running a pass.
func (e *Engine) Query(root Node) (width, height int) {
	if root == nil {
		return 0, 0
	}
	p := e.NewPass()
	return root.QueryAxis(p, Horizontal), root.QueryAxis(p, Vertical)
}

type measureKey struct {
	text string
	font Font
}

// Pass holds state scoped to one layout traversal. Measurement results
// are memoized here and discarded with the pass, since the measurer may
// legitimately change between passes (DPI change, font reload).
type Pass struct {
	measurer Measurer
	realizer Realizer
	log      *log.Logger
	widths   map[measureKey]int
	metrics  map[Font]FontMetrics
}

// NewPass creates a standalone pass for m, mainly useful for querying a
// single node outside an Engine.
func NewPass(m Measurer) *Pass {
	return NewEngine(WithMeasurer(m)).NewPass()
}

// TextWidth measures a single line of text.
func (p *Pass) TextWidth(text string, font Font) int {
	if text == "" {
		return 0
	}
	key := measureKey{text: text, font: font}
	if w, ok := p.widths[key]; ok {
		return w
	}
	w := max(0, p.measurer.MeasureTextWidth(text, font))
	p.widths[key] = w
	return w
}

// LineHeight returns the font's line height, at least 1.
func (p *Pass) LineHeight(font Font) int {
	m, ok := p.metrics[font]
	if !ok {
		m = p.measurer.FontMetrics(font)
		p.metrics[font] = m
	}
	return max(1, m.Height)
}

// realize hands a node's final rectangle to the realizer.
func (p *Pass) realize(n Node) {
	if p.realizer != nil {
		p.realizer.Realize(n, n.Bounds())
	}
}
