package scene

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-flex/internal/layout"
)

// NodeSpec is the data form of one layout node. Which fields apply depends
// on Type.
type NodeSpec struct {
	Type string `toml:"type"`

	Text      string `toml:"text"`
	Font      string `toml:"font"`
	URL       string `toml:"url"`
	ID        int    `toml:"id"`
	Multiline bool   `toml:"multiline"`
	ReadOnly  bool   `toml:"read_only"`

	Width  Dim `toml:"width"`
	Height Dim `toml:"height"`

	// Containers.
	Gap      Dim        `toml:"gap"`
	Align    AlignSpec  `toml:"align"`
	Children []NodeSpec `toml:"children"`

	// Padding and window.
	Padding []int     `toml:"padding"`
	Child   *NodeSpec `toml:"child"`

	// Separators.
	Axis      string `toml:"axis"`
	Thickness int    `toml:"thickness"`
	Length    Dim    `toml:"length"`
}

// Build creates the layout node s describes.
func (s NodeSpec) Build() (layout.Node, error) {
	return s.build("root")
}

func (s NodeSpec) build(path string) (layout.Node, error) {
	switch strings.ToLower(s.Type) {
	case "window":
		child, err := s.buildChild(path)
		if err != nil {
			return nil, err
		}
		return layout.NewWindow(child), nil

	case "padding":
		edges, err := edgesOf(s.Padding)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		child, err := s.buildChild(path)
		if err != nil {
			return nil, err
		}
		return layout.NewPadding(edges, child), nil

	case "horizontal", "row":
		return s.buildContainer(path, layout.Horizontal)

	case "vertical", "column":
		return s.buildContainer(path, layout.Vertical)

	case "text":
		return layout.NewText(s.Text, layout.Font(s.Font)), nil

	case "link":
		if s.URL == "" {
			return nil, fmt.Errorf("%s: link needs a url", path)
		}
		return layout.NewLink(s.URL, s.Text, layout.Font(s.Font)), nil

	case "button":
		return layout.NewButton(s.Text, s.ID, s.Width.Dimension, s.Height.Dimension), nil

	case "edit":
		return layout.NewEdit(s.Text, s.Multiline, s.ReadOnly, s.Width.Dimension, s.Height.Dimension), nil

	case "spacer":
		return layout.NewSpacer(s.Width.Dimension, s.Height.Dimension), nil

	case "separator":
		axis, err := axisOf(s.Axis)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return layout.NewSeparatorLine(axis, s.Thickness, s.Length.Dimension), nil

	case "":
		return nil, fmt.Errorf("%s: missing node type", path)
	default:
		return nil, fmt.Errorf("%s: unknown node type %q", path, s.Type)
	}
}

func (s NodeSpec) buildChild(path string) (layout.Node, error) {
	if s.Child == nil {
		return nil, nil
	}
	return s.Child.build(path + ".child")
}

func (s NodeSpec) buildContainer(path string, axis layout.Axis) (layout.Node, error) {
	children := make([]layout.Node, 0, len(s.Children))
	for i, cs := range s.Children {
		child, err := cs.build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return layout.NewContainer(axis,
		layout.WithGapDimension(s.Gap.Dimension),
		layout.WithAlign(s.Align.Primary, s.Align.Cross),
		layout.WithWidth(s.Width.Dimension),
		layout.WithHeight(s.Height.Dimension),
		layout.WithChildren(children...),
	), nil
}

// edgesOf expands 0, 1, 2 or 4 values: all sides, vertical and horizontal,
// or top, right, bottom, left.
func edgesOf(v []int) (layout.Edges, error) {
	for _, n := range v {
		if n < 0 {
			return layout.Edges{}, fmt.Errorf("padding must not be negative, got %v", v)
		}
	}
	switch len(v) {
	case 0:
		return layout.Edges{}, nil
	case 1:
		return layout.EdgeAll(v[0]), nil
	case 2:
		return layout.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return layout.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return layout.Edges{}, fmt.Errorf("padding takes 1, 2 or 4 values, got %d", len(v))
	}
}

func axisOf(s string) (layout.Axis, error) {
	switch strings.ToLower(s) {
	case "", "horizontal":
		return layout.Horizontal, nil
	case "vertical":
		return layout.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown axis %q", s)
	}
}
