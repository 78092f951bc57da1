package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a snapshot to Graphviz DOT. Each node is labelled with its
// description and rectangle; edges follow ownership, recovered from the
// entry depths.
func ToDOT(entries []Entry) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=12];\n")
	buf.WriteString("\n")

	for i, e := range entries {
		r := e.Rect
		label := fmt.Sprintf("%s\n%d,%d %dx%d", Label(e.Node, 0), r.X, r.Y, r.Width, r.Height)
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, dotAttrs(KindOf(e.Node), label))
	}

	buf.WriteString("\n")
	// parents[d] is the index of the latest entry seen at depth d.
	var parents []int
	for i, e := range entries {
		parents = append(parents[:min(e.Depth, len(parents))], i)
		if e.Depth > 0 && len(parents) > 1 {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", parents[len(parents)-2], i)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotAttrs(k Kind, label string) string {
	attrs := fmt.Sprintf("label=%q", label)
	switch k {
	case KindContainer, KindPadding, KindWindow:
		attrs += ", fillcolor=lightgrey"
	case KindSpacer:
		attrs += ", style=\"rounded,dashed\""
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
