package layout

import (
	"fmt"
	"strings"
)

var _ Node = (*Text)(nil)

// Text is a leaf displaying a string. It can reflow: when its container is
// short of space it wraps at word boundaries, and its height is re-derived
// from the resulting line count once its width is known.
type Text struct {
	box
	text string
	font Font

	// Width the text was last distributed at; 0 before any pass.
	wrapWidth int
}

// NewText creates a text leaf.
func NewText(text string, font Font) *Text {
	return &Text{text: text, font: font}
}

// Text returns the displayed string.
func (t *Text) Text() string { return t.text }

// Font returns the text's font.
func (t *Text) Font() Font { return t.font }

// SetText replaces the string; the next pass picks it up.
func (t *Text) SetText(s string) {
	t.text = s
	t.wrapWidth = 0
}

// Extents returns the unwrapped (width, height) of the text.
func (t *Text) Extents(p *Pass) (width, height int) {
	w, lines := extents(p, t.text, t.font)
	return w, lines * p.LineHeight(t.font)
}

// Lines returns the lines the text was laid out as in the last pass.
func (t *Text) Lines(p *Pass) []string {
	if t.text == "" {
		return nil
	}
	if t.wrapWidth <= 0 {
		return paragraphs(t.text)
	}
	return wrapLines(p, t.text, t.font, t.wrapWidth)
}

// QueryAxis returns the longest token width horizontally and the height of
// the lines produced by the last distributed width vertically.
func (t *Text) QueryAxis(p *Pass, axis Axis) int {
	if t.text == "" {
		return 0
	}
	if axis == Horizontal {
		return longestToken(p, t.text, t.font)
	}
	return len(t.Lines(p)) * p.LineHeight(t.font)
}

// DistributeAxis wraps the text at the available width (never below the
// longest token) and reports the widest resulting line. Vertically the
// text takes exactly the height of its lines.
func (t *Text) DistributeAxis(p *Pass, axis Axis, available int) int {
	if t.text == "" {
		t.wrapWidth = 0
		return t.setSize(axis, 0)
	}
	if axis == Vertical {
		return t.setSize(axis, t.QueryAxis(p, Vertical))
	}

	floor := longestToken(p, t.text, t.font)
	target := max(available, floor)
	preferred, _ := extents(p, t.text, t.font)
	if target >= preferred {
		t.wrapWidth = 0
		return t.setSize(axis, preferred)
	}

	t.wrapWidth = target
	return t.setSize(axis, max(floor, widestLine(p, wrapLines(p, t.text, t.font, target), t.font)))
}

func (t *Text) PositionAt(p *Pass, x, y int) {
	t.setPos(x, y)
	p.realize(t)
}

// PreferredWidth returns the unwrapped width. Any non-empty text with more
// than one token can reflow.
func (t *Text) PreferredWidth(p *Pass) (int, bool) {
	if t.text == "" {
		return 0, false
	}
	w, _ := extents(p, t.text, t.font)
	return w, true
}

// TryShrinkWidth reports the width the text would occupy if wrapped at
// target. It never returns less than the longest token and does not change
// the text's layout state.
func (t *Text) TryShrinkWidth(p *Pass, target int) int {
	if strings.TrimSpace(t.text) == "" {
		return 0
	}
	floor := longestToken(p, t.text, t.font)
	if target <= floor {
		return floor
	}
	return max(floor, widestLine(p, wrapLines(p, t.text, t.font, target), t.font))
}

func (t *Text) AxisDimension(Axis) Dimension {
	return Auto()
}

func (t *Text) String() string {
	return fmt.Sprintf("Text(%q)", t.text)
}
