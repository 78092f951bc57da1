package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Kind classifies nodes for display.
type Kind int

const (
	KindOther Kind = iota
	KindWindow
	KindPadding
	KindContainer
	KindText
	KindLink
	KindButton
	KindEdit
	KindSpacer
	KindSeparator
)

var kindNames = map[Kind]string{
	KindOther:     "node",
	KindWindow:    "window",
	KindPadding:   "padding",
	KindContainer: "container",
	KindText:      "text",
	KindLink:      "link",
	KindButton:    "button",
	KindEdit:      "edit",
	KindSpacer:    "spacer",
	KindSeparator: "separator",
}

func (k Kind) String() string {
	return kindNames[k]
}

// KindOf returns the display kind of n.
func KindOf(n layout.Node) Kind {
	switch n.(type) {
	case *layout.Window:
		return KindWindow
	case *layout.Padding:
		return KindPadding
	case *layout.Container:
		return KindContainer
	case *layout.Link:
		return KindLink
	case *layout.Text:
		return KindText
	case *layout.Button:
		return KindButton
	case *layout.Edit:
		return KindEdit
	case *layout.Spacer:
		return KindSpacer
	case *layout.SeparatorLine:
		return KindSeparator
	default:
		return KindOther
	}
}

// Caption returns the user-visible text of n, if it has any.
func Caption(n layout.Node) string {
	switch v := n.(type) {
	case *layout.Link:
		return v.Text.Text()
	case *layout.Text:
		return v.Text()
	case *layout.Button:
		return v.Label()
	case *layout.Edit:
		return v.Text()
	default:
		return ""
	}
}

// Label is a one-line description of n no wider than width cells. A width
// <= 0 means no limit.
func Label(n layout.Node, width int) string {
	var s string
	switch v := n.(type) {
	case *layout.Container:
		s = fmt.Sprintf("%s gap=%d", v.Axis(), v.Gap())
	case *layout.Button:
		s = fmt.Sprintf("%q #%d", v.Label(), v.ID())
	case *layout.Link:
		s = fmt.Sprintf("%q -> %s", v.Text.Text(), v.URL())
	case *layout.Padding:
		e := v.Edges()
		s = fmt.Sprintf("%d %d %d %d", e.Top, e.Right, e.Bottom, e.Left)
	case *layout.SeparatorLine:
		s = fmt.Sprintf("%s %dpx", v.Axis(), v.Thickness())
	case *layout.Spacer:
		s = fmt.Sprintf("%s x %s", v.AxisDimension(layout.Horizontal), v.AxisDimension(layout.Vertical))
	default:
		if c := Caption(n); c != "" {
			s = fmt.Sprintf("%q", oneLine(c))
		}
	}

	s = strings.TrimSpace(KindOf(n).String() + " " + s)
	if width > 0 {
		s = runewidth.Truncate(s, width, "…")
	}
	return s
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
