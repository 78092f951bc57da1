package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-flex/internal/layout"
)

type cell struct {
	r    rune
	kind Kind
}

// Canvas is a grid of terminal cells onto which pixel rectangles are drawn.
// Each cell covers CellWidth x CellHeight pixels.
type Canvas struct {
	cols, rows int
	cellW      int
	cellH      int
	cells      [][]cell
}

// NewCanvas creates a canvas covering width x height pixels.
func NewCanvas(width, height, cellW, cellH int) *Canvas {
	cellW, cellH = max(1, cellW), max(1, cellH)
	c := &Canvas{
		cols:  ceilDiv(max(0, width), cellW),
		rows:  ceilDiv(max(0, height), cellH),
		cellW: cellW,
		cellH: cellH,
	}
	c.cells = make([][]cell, c.rows)
	for y := range c.cells {
		row := make([]cell, c.cols)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// cellRect converts a pixel rectangle to inclusive cell coordinates. ok is
// false for empty rectangles.
func (c *Canvas) cellRect(r layout.Rect) (x0, y0, x1, y1 int, ok bool) {
	if r.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	x0, y0 = r.X/c.cellW, r.Y/c.cellH
	x1, y1 = (r.Right()-1)/c.cellW, (r.Bottom()-1)/c.cellH
	return x0, y0, x1, y1, true
}

func (c *Canvas) set(x, y int, r rune, k Kind) {
	if x < 0 || y < 0 || y >= c.rows || x >= c.cols {
		return
	}
	c.cells[y][x] = cell{r: r, kind: k}
}

// text writes s starting at (x, y), clipped to maxX.
func (c *Canvas) text(x, y, maxX int, s string, k Kind) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w-1 > maxX {
			return
		}
		c.set(x, y, r, k)
		for i := 1; i < w; i++ {
			c.set(x+i, y, 0, k)
		}
		x += w
	}
}

func (c *Canvas) box(x0, y0, x1, y1 int, k Kind) {
	if x0 == x1 || y0 == y1 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', k)
		c.set(x, y1, '─', k)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', k)
		c.set(x1, y, '│', k)
	}
	c.set(x0, y0, '┌', k)
	c.set(x1, y0, '┐', k)
	c.set(x0, y1, '└', k)
	c.set(x1, y1, '┘', k)
}

// Draw paints one node. Containers, padding and spacers are invisible.
func (c *Canvas) Draw(n layout.Node, r layout.Rect) {
	x0, y0, x1, y1, ok := c.cellRect(r)
	if !ok {
		return
	}
	k := KindOf(n)

	switch k {
	case KindWindow:
		c.box(x0, y0, x1, y1, k)

	case KindButton:
		label := Caption(n)
		if y0 == y1 || x1-x0 < 2 {
			c.text(x0, y0, x1, "["+label+"]", k)
			return
		}
		c.box(x0, y0, x1, y1, k)
		inner := x1 - x0 - 1
		label = runewidth.Truncate(label, inner, "")
		pad := (inner - runewidth.StringWidth(label)) / 2
		c.text(x0+1+pad, (y0+y1)/2, x1-1, label, k)

	case KindEdit:
		if y0 == y1 || x1-x0 < 2 {
			c.text(x0, y0, x1, Caption(n), k)
			return
		}
		c.box(x0, y0, x1, y1, k)
		lines := wrapCells(Caption(n), x1-x0-1)
		for i, line := range lines {
			if y0+1+i >= y1 {
				break
			}
			c.text(x0+1, y0+1+i, x1-1, line, k)
		}

	case KindText, KindLink:
		lines := wrapCells(Caption(n), x1-x0+1)
		for i, line := range lines {
			if y0+i > y1 {
				break
			}
			c.text(x0, y0+i, x1, line, k)
		}

	case KindSeparator:
		sep := n.(*layout.SeparatorLine)
		if sep.Axis() == layout.Horizontal {
			for x := x0; x <= x1; x++ {
				c.set(x, y0, '─', k)
			}
		} else {
			for y := y0; y <= y1; y++ {
				c.set(x0, y, '│', k)
			}
		}
	}
}

// DrawAll paints entries in order, so later entries (children) overwrite
// earlier ones (parents).
func (c *Canvas) DrawAll(entries []Entry) {
	for _, e := range entries {
		c.Draw(e.Node, e.Rect)
	}
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	return c.Render(false)
}

// Render returns the canvas as lines of text. With color, runs of cells
// drawn by the same kind of node share one lipgloss style.
func (c *Canvas) Render(color bool) string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		kind := KindOther
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if color {
				b.WriteString(styleFor(kind).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}

// wrapCells breaks s into lines of at most width cells at spaces. Words
// longer than width are cut.
func wrapCells(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
