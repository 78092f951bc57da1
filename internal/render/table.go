package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const labelWidth = 48

// Table formats entries as a bordered table of node rectangles, indented by
// depth. Rows whose rectangle reaches outside the first entry's rectangle
// (the root) are highlighted as overflow.
func Table(entries []Entry, color bool) string {
	if len(entries) == 0 {
		return ""
	}
	root := entries[0].Rect

	rows := make([][]string, 0, len(entries))
	overflow := make([]bool, 0, len(entries))
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Depth)
		rows = append(rows, []string{
			indent + Label(e.Node, labelWidth-len(indent)),
			strconv.Itoa(e.Rect.X),
			strconv.Itoa(e.Rect.Y),
			strconv.Itoa(e.Rect.Width),
			strconv.Itoa(e.Rect.Height),
		})
		overflow = append(overflow, !e.Rect.IsEmpty() && !root.ContainsRect(e.Rect))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Node", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				base = base.Align(lipgloss.Right)
			}
			if !color {
				return base
			}
			switch {
			case row == table.HeaderRow:
				return base.Inherit(styleHeader)
			case row >= 0 && row < len(overflow) && overflow[row]:
				return base.Inherit(styleOverflow)
			case col > 0:
				return base.Inherit(styleNumber)
			}
			return base
		})
	if color {
		t = t.BorderStyle(styleBorder)
	}
	return t.Render()
}
