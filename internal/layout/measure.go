package layout

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Font names a typeface. The empty Font is the measurer's default UI font.
type Font string

// FontMetrics describes the vertical metrics of a font.
type FontMetrics struct {
	Height int // Line height, always > 0
}

// Measurer is the text measurement capability injected into an Engine.
// Implementations must return the same answer for the same (text, font)
// pair for the duration of one pass.
type Measurer interface {
	MeasureTextWidth(text string, font Font) int
	FontMetrics(font Font) FontMetrics
}

// MeasurerFuncs adapts plain functions to a Measurer. A nil field falls
// back to the zero HeuristicMeasurer.
type MeasurerFuncs struct {
	Width   func(text string, font Font) int
	Metrics func(font Font) FontMetrics
}

func (m MeasurerFuncs) MeasureTextWidth(text string, font Font) int {
	if m.Width == nil {
		return HeuristicMeasurer{}.MeasureTextWidth(text, font)
	}
	return m.Width(text, font)
}

func (m MeasurerFuncs) FontMetrics(font Font) FontMetrics {
	if m.Metrics == nil {
		return HeuristicMeasurer{}.FontMetrics(font)
	}
	return m.Metrics(font)
}

// DefaultLineHeight is the line height of the heuristic measurer.
const DefaultLineHeight = 16

// HeuristicMeasurer estimates text widths from character classes. It is the
// fallback used when no real font measurement is available and is fully
// deterministic. The zero value is ready to use.
type HeuristicMeasurer struct {
	LineHeight int     // 0 means DefaultLineHeight
	Scale      float64 // Width multiplier; 0 means 1
}

// MeasureTextWidth sums per-grapheme class widths.
func (h HeuristicMeasurer) MeasureTextWidth(text string, _ Font) int {
	if text == "" {
		return 0
	}

	width := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		width += classWidth(runes[0])
	}

	if h.Scale > 0 && h.Scale != 1 {
		width = int(math.Round(float64(width) * h.Scale))
	}
	return width
}

// FontMetrics returns the configured line height.
func (h HeuristicMeasurer) FontMetrics(_ Font) FontMetrics {
	if h.LineHeight > 0 {
		return FontMetrics{Height: h.LineHeight}
	}
	return FontMetrics{Height: DefaultLineHeight}
}

// classWidth returns the estimated pixel width of a character class.
func classWidth(r rune) int {
	switch {
	case r == ' ':
		return 4
	case r == 'i' || r == 'j':
		return 4
	case r == 'I' || r == 'l' || r == '1':
		return 5
	case r == 'f' || r == 'r' || r == 't':
		return 6
	case r == 'm' || r == 'w':
		return 12
	case r == 'M' || r == 'W':
		return 14
	case r >= 'a' && r <= 'z':
		return 8
	case r >= 'A' && r <= 'Z':
		return 10
	case r > 127:
		if runewidth.RuneWidth(r) == 2 {
			return 16
		}
		if r >= 0x100 {
			return 10
		}
		return 8
	default:
		return 8
	}
}
