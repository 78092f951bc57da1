package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/render"
)

// previewChrome is the number of terminal rows used by the status lines.
const previewChrome = 2

func newPreviewCmd() *cobra.Command {
	var size sizeOpts

	cmd := &cobra.Command{
		Use:   "preview <scene>",
		Short: "Interactively preview a scene and watch it reflow",
		Long: `Draw a scene in the terminal and lay it out again whenever the size changes.

The layout follows the terminal size. Arrow keys grow or shrink the window by
one cell; r resets to the terminal size; q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], &size)
		},
	}
	size.register(cmd)
	return cmd
}

func runPreview(ctx context.Context, name string, size *sizeOpts) error {
	cfg := configFromContext(ctx)
	s, root, err := loadScene(ctx, name)
	if err != nil {
		return err
	}
	w, h, err := size.resolve(cfg, s)
	if err != nil {
		return err
	}
	if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil && size.width == 0 && size.height == 0 {
		w, h = cellsToPixels(cfg, cols, rows)
	}

	m := newPreviewModel(ctx, s.Name, root, cfg, w, h)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func cellsToPixels(cfg *config.Config, cols, rows int) (w, h int) {
	return cols * cfg.Render.CellWidth, max(0, rows-previewChrome) * cfg.Render.CellHeight
}

// previewModel re-runs the layout whenever the available size changes.
type previewModel struct {
	name   string
	root   layout.Node
	engine *layout.Engine
	rec    *render.Recorder
	cfg    *config.Config

	width, height int // available pixels
	termW, termH  int // last known terminal size in pixels
	bounds        layout.Rect
}

func newPreviewModel(ctx context.Context, name string, root layout.Node, cfg *config.Config, w, h int) *previewModel {
	rec := &render.Recorder{}
	m := &previewModel{
		name:   name,
		root:   root,
		engine: newEngine(ctx, rec),
		rec:    rec,
		cfg:    cfg,
		width:  w,
		height: h,
		termW:  w,
		termH:  h,
	}
	m.relayout()
	return m
}

func (m *previewModel) relayout() {
	m.rec.Reset()
	m.bounds = m.engine.Layout(m.root, 0, 0, m.width, m.height)
}

func (m *previewModel) resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if w == m.width && h == m.height {
		return
	}
	m.width, m.height = w, h
	m.relayout()
}

func (m *previewModel) Init() tea.Cmd {
	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cw, ch := m.cfg.Render.CellWidth, m.cfg.Render.CellHeight

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.resize(m.width-cw, m.height)
		case "right", "l":
			m.resize(m.width+cw, m.height)
		case "up", "k":
			m.resize(m.width, m.height-ch)
		case "down", "j":
			m.resize(m.width, m.height+ch)
		case "r":
			m.resize(m.termW, m.termH)
		}
	case tea.WindowSizeMsg:
		m.termW, m.termH = cellsToPixels(m.cfg, msg.Width, msg.Height)
		m.resize(m.termW, m.termH)
	}
	return m, nil
}

func (m *previewModel) View() string {
	var b strings.Builder

	status := fmt.Sprintf("%s  %dx%d", m.name, m.width, m.height)
	b.WriteString(styleTitle.Render(status))
	if m.bounds.Width > m.width || m.bounds.Height > m.height {
		b.WriteString("  " + styleWarning.Render(fmt.Sprintf("overflow %dx%d", m.bounds.Width, m.bounds.Height)))
	}
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ width  ↑/↓ height  r reset  q quit"))
	b.WriteString("\n")

	c := render.NewCanvas(m.bounds.Width, m.bounds.Height, m.cfg.Render.CellWidth, m.cfg.Render.CellHeight)
	c.DrawAll(m.rec.Entries())
	b.WriteString(c.Render(m.cfg.Render.Color))
	return b.String()
}
