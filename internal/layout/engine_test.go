package layout

import (
	"fmt"
	"slices"
	"testing"
	"unicode/utf8"
)

// monoMeasurer gives every rune 8px and every line 16px.
var monoMeasurer = MeasurerFuncs{
	Width: func(text string, _ Font) int {
		return 8 * utf8.RuneCountInString(text)
	},
	Metrics: func(Font) FontMetrics {
		return FontMetrics{Height: 16}
	},
}

func newTestEngine(opts ...EngineOption) *Engine {
	return NewEngine(append([]EngineOption{WithMeasurer(monoMeasurer)}, opts...)...)
}

func newTestPass() *Pass {
	return NewPass(monoMeasurer)
}

// boundsOf collects the rectangles of root and its owned descendants.
func boundsOf(root Node) []Rect {
	var out []Rect
	Walk(root, func(n Node, _ int) {
		out = append(out, n.Bounds())
	})
	return out
}

func TestEngine_Layout_NilRoot(t *testing.T) {
	e := newTestEngine()
	if got := e.Layout(nil, 0, 0, 100, 100); got != (Rect{}) {
		t.Errorf("Layout(nil) = %+v, want zero Rect", got)
	}
	if w, h := e.Query(nil); w != 0 || h != 0 {
		t.Errorf("Query(nil) = (%d, %d), want (0, 0)", w, h)
	}
}

func TestEngine_Query(t *testing.T) {
	row := NewHorizontal(WithGap(5), WithChildren(
		NewSpacer(Fixed(20), Fixed(10)),
		NewText("hello world", ""),
	))

	w, h := newTestEngine().Query(row)
	// 20 + 5 + longest token "hello" (40)
	if w != 65 {
		t.Errorf("Query() width = %d, want 65", w)
	}
	if h != 16 {
		t.Errorf("Query() height = %d, want 16", h)
	}
}

func TestEngine_Realizer(t *testing.T) {
	var seen []string
	e := newTestEngine(WithRealizer(RealizerFunc(func(n Node, r Rect) {
		if n.Bounds() != r {
			t.Errorf("Realize(%v) got rect %+v, node reports %+v", n, r, n.Bounds())
		}
		seen = append(seen, fmt.Sprint(n))
	})))

	root := NewWindow(NewPadding(EdgeAll(4), NewVertical(WithChildren(
		NewText("title", ""),
		NewLink("https://example.com", "home", ""),
	))))
	e.Layout(root, 0, 0, 200, 100)

	want := []string{
		"Window",
		"Padding(4, 4, 4, 4)",
		"Vertical(children=2, gap=0)",
		`Text("title")`,
		`Link("home" -> https://example.com)`,
	}
	if !slices.Equal(seen, want) {
		t.Errorf("realized %v, want %v", seen, want)
	}
}

func TestPass_TextWidthMemoized(t *testing.T) {
	calls := 0
	m := MeasurerFuncs{Width: func(text string, _ Font) int {
		calls++
		return len(text)
	}}
	p := NewPass(m)

	for range 3 {
		if got := p.TextWidth("abc", "bold"); got != 3 {
			t.Fatalf("TextWidth() = %d, want 3", got)
		}
	}
	if calls != 1 {
		t.Errorf("measurer called %d times, want 1", calls)
	}

	p.TextWidth("abc", "")
	if calls != 2 {
		t.Errorf("different font should be measured separately, calls = %d", calls)
	}

	if got := p.TextWidth("", "bold"); got != 0 {
		t.Errorf("TextWidth(\"\") = %d, want 0", got)
	}

	// A new pass starts with an empty memo.
	NewPass(m).TextWidth("abc", "bold")
	if calls != 3 {
		t.Errorf("new pass reused memo, calls = %d", calls)
	}
}

func TestPass_LineHeightAtLeastOne(t *testing.T) {
	p := NewPass(MeasurerFuncs{Metrics: func(Font) FontMetrics { return FontMetrics{} }})
	if got := p.LineHeight(""); got != 1 {
		t.Errorf("LineHeight() = %d, want 1", got)
	}
}
