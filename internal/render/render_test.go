package render

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-flex/internal/layout"
)

var monoMeasurer = layout.MeasurerFuncs{
	Width: func(text string, _ layout.Font) int {
		return 8 * utf8.RuneCountInString(text)
	},
	Metrics: func(layout.Font) layout.FontMetrics {
		return layout.FontMetrics{Height: 16}
	},
}

// dialog is a window holding a text line above a right-aligned OK button.
func dialog() layout.Node {
	return layout.NewWindow(layout.NewVertical(
		layout.WithGap(8),
		layout.WithChildren(
			layout.NewText("Hello", ""),
			layout.NewSeparatorLine(layout.Horizontal, 0, layout.Auto()),
			layout.NewHorizontal(
				layout.WithWidth(layout.Expand(0)),
				layout.WithAlign(layout.AlignEnd, layout.AlignStart),
				layout.WithChildren(layout.NewButton("OK", 1, layout.Fixed(80), layout.Fixed(32))),
			),
		),
	))
}

func layoutWith(t *testing.T, root layout.Node, w, h int) *Recorder {
	t.Helper()
	rec := &Recorder{}
	layout.NewEngine(layout.WithMeasurer(monoMeasurer), layout.WithRealizer(rec)).Layout(root, 0, 0, w, h)
	return rec
}

func TestRecorder_ParentsFirst(t *testing.T) {
	root := dialog()
	rec := layoutWith(t, root, 160, 96)

	entries := rec.Entries()
	require.Len(t, entries, 6)
	assert.Equal(t, KindWindow, KindOf(entries[0].Node))
	assert.Equal(t, KindContainer, KindOf(entries[1].Node))
	assert.Equal(t, layout.NewRect(0, 0, 160, 96), entries[0].Rect)
	assert.Equal(t, layout.NewRect(80, 34, 80, 32), entries[5].Rect)

	rec.Reset()
	assert.Empty(t, rec.Entries())
}

func TestSnapshot_Depths(t *testing.T) {
	root := dialog()
	layoutWith(t, root, 160, 96)

	var depths []int
	for _, e := range Snapshot(root) {
		depths = append(depths, e.Depth)
	}
	assert.Equal(t, []int{0, 1, 2, 2, 2, 3}, depths)
}

func TestLabel(t *testing.T) {
	tests := map[string]struct {
		node  layout.Node
		width int
		want  string
	}{
		"button": {
			node: layout.NewButton("OK", 7, layout.Auto(), layout.Auto()),
			want: `button "OK" #7`,
		},
		"text collapses whitespace": {
			node: layout.NewText("a\r\nb   c", ""),
			want: `text "a b c"`,
		},
		"link": {
			node: layout.NewLink("https://x.dev", "docs", ""),
			want: `link "docs" -> https://x.dev`,
		},
		"container": {
			node: layout.NewVertical(layout.WithGap(5)),
			want: "container vertical gap=5",
		},
		"padding": {
			node: layout.NewPadding(layout.EdgeTRBL(1, 2, 3, 4), nil),
			want: "padding 1 2 3 4",
		},
		"truncated": {
			node:  layout.NewText("a long sentence", ""),
			width: 10,
			want:  `text "a l…`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Label(tc.node, tc.width))
		})
	}
}

func TestCanvas_DrawsDialog(t *testing.T) {
	root := dialog()
	rec := layoutWith(t, root, 160, 96)

	c := NewCanvas(160, 96, 8, 16)
	cols, rows := c.Size()
	assert.Equal(t, 20, cols)
	assert.Equal(t, 6, rows)

	c.DrawAll(rec.Entries())
	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 6)

	assert.True(t, strings.HasPrefix(lines[0], "Hello"), lines[0])
	assert.Equal(t, strings.Repeat("─", 20), lines[1])
	assert.Contains(t, lines[2], "┌")
	assert.Contains(t, lines[3], "OK")
	assert.Equal(t, 20, utf8.RuneCountInString(lines[3]))
}

func TestCanvas_EmptyRectIgnored(t *testing.T) {
	c := NewCanvas(16, 16, 8, 16)
	c.Draw(layout.NewButton("x", 1, layout.Auto(), layout.Auto()), layout.NewRect(0, 0, 0, 10))
	assert.Equal(t, "  ", c.String())
}

func TestWrapCells(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		want  []string
	}{
		"fits":       {text: "one two", width: 10, want: []string{"one two"}},
		"wraps":      {text: "one two three", width: 7, want: []string{"one two", "three"}},
		"long word":  {text: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		"paragraphs": {text: "a\r\nb", width: 5, want: []string{"a", "b"}},
		"zero width": {text: "a", width: 0, want: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, wrapCells(tc.text, tc.width))
		})
	}
}

func TestTable(t *testing.T) {
	root := dialog()
	layoutWith(t, root, 160, 96)

	out := Table(Snapshot(root), false)
	assert.Contains(t, out, "Node")
	assert.Contains(t, out, `button "OK" #1`)
	assert.Contains(t, out, "    separator horizontal 2px")
	assert.Empty(t, Table(nil, false))
}

func TestToDOT(t *testing.T) {
	root := dialog()
	layoutWith(t, root, 160, 96)

	dot := ToDOT(Snapshot(root))
	assert.True(t, strings.HasPrefix(dot, "digraph layout {"))
	for _, edge := range []string{"n0 -> n1;", "n1 -> n2;", "n1 -> n3;", "n1 -> n4;", "n4 -> n5;"} {
		assert.Contains(t, dot, edge)
	}
	assert.NotContains(t, dot, "n2 -> n3;")
	assert.Contains(t, dot, `80,34 80x32`)
}

func TestRenderSVG(t *testing.T) {
	root := dialog()
	layoutWith(t, root, 160, 96)

	svg, err := RenderSVG(context.Background(), ToDOT(Snapshot(root)))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRenderSVG_BadDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), "digraph {")
	require.Error(t, err)
}
