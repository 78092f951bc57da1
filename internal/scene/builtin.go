package scene

import "github.com/grindlemire/go-flex/internal/layout"

const aboutText = "go-flex lays out native widgets with a flexbox-style model.\r\n\r\n" +
	"Sizes are resolved in a single pass: every node reports its minimum, " +
	"space is distributed along each axis and the final rectangles are handed " +
	"to the realizer.\r\n\r\nResize this window to watch the text reflow."

const repositoryURL = "https://github.com/grindlemire/go-flex"

// Button IDs used by the about scene.
const (
	IDOK   = 1002
	IDCopy = 1003
)

var builtins = map[string]*Scene{}

func register(s *Scene) {
	builtins[s.Name] = s
}

func init() {
	register(&Scene{
		Name:        "about",
		Description: "About dialog: read-only edit, link, separator and right-aligned buttons",
		Width:       420,
		Height:      300,
		build:       infallible(aboutLayout),
	})
	register(&Scene{
		Name:        "buttons",
		Description: "A row of buttons mixing Fixed, Expand, Grow and Auto widths",
		Width:       600,
		Height:      60,
		build:       infallible(buttonsLayout),
	})
	register(&Scene{
		Name:        "text",
		Description: "Wrapping text squeezed between two fixed buttons",
		Width:       400,
		Height:      120,
		build:       infallible(textLayout),
	})
	register(&Scene{
		Name:        "vertical",
		Description: "A column of buttons mixing Fixed, Expand, Grow and Auto heights",
		Width:       200,
		Height:      300,
		build:       infallible(verticalLayout),
	})
}

func infallible(fn func() layout.Node) func() (layout.Node, error) {
	return func() (layout.Node, error) {
		return fn(), nil
	}
}

func aboutLayout() layout.Node {
	body := layout.NewPadding(layout.EdgeAll(10), layout.NewVertical(
		layout.WithGap(5),
		layout.WithChildren(
			layout.NewEdit(aboutText, true, true, layout.Fixed(380), layout.Fixed(150)),
			layout.NewLink(repositoryURL, "Visit GitHub Repository", ""),
		),
	))

	buttons := layout.NewPadding(layout.EdgeAll(10), layout.NewHorizontal(
		layout.WithGap(5),
		layout.WithAlign(layout.AlignEnd, layout.AlignEnd),
		layout.WithWidth(layout.Expand(0)),
		layout.WithChildren(
			layout.NewButton("Copy", IDCopy, layout.Fixed(75), layout.Fixed(25)),
			layout.NewButton("OK", IDOK, layout.Fixed(75), layout.Fixed(25)),
		),
	))

	return layout.NewWindow(layout.NewVertical(layout.WithChildren(
		body,
		layout.NewSeparatorLine(layout.Horizontal, 0, layout.Auto()),
		buttons,
	)))
}

func buttonsLayout() layout.Node {
	return layout.NewWindow(layout.NewHorizontal(
		layout.WithGap(10),
		layout.WithChildren(
			layout.NewButton("Fixed", 1, layout.Fixed(75), layout.Auto()),
			layout.NewButton("Expand", 2, layout.ExpandRange(50, 120), layout.Auto()),
			layout.NewButton("Grow Small", 3, layout.Grow(30), layout.Auto()),
			layout.NewButton("Grow Large", 4, layout.GrowRange(100, 150), layout.Auto()),
			layout.NewButton("Auto", 5, layout.Auto(), layout.Auto()),
		),
	))
}

func textLayout() layout.Node {
	return layout.NewWindow(layout.NewHorizontal(
		layout.WithGap(10),
		layout.WithChildren(
			layout.NewButton("Fixed", 1, layout.Fixed(75), layout.Auto()),
			layout.NewText("This is a long text that should wrap when space is limited", "Arial"),
			layout.NewButton("End", 2, layout.Fixed(50), layout.Auto()),
		),
	))
}

func verticalLayout() layout.Node {
	return layout.NewWindow(layout.NewVertical(
		layout.WithGap(5),
		layout.WithChildren(
			layout.NewButton("Fixed Height", 1, layout.Auto(), layout.Fixed(25)),
			layout.NewButton("Expand Height", 2, layout.Auto(), layout.ExpandRange(20, 60)),
			layout.NewButton("Grow Small", 3, layout.Auto(), layout.Grow(15)),
			layout.NewButton("Grow Large", 4, layout.Auto(), layout.GrowRange(40, 80)),
			layout.NewButton("Auto Height", 5, layout.Auto(), layout.Auto()),
		),
	))
}
