package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/render"
)

type layoutOpts struct {
	size    sizeOpts
	canvas  bool
	noColor bool
}

func newLayoutCmd() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout <scene>",
		Short: "Lay out a scene and print every node's rectangle",
		Long: `Lay out a scene once at the given size and print a table of node rectangles.

The scene is a built-in name (see "flex scenes") or a path to a TOML scene file.
Rows that reach outside the window are highlighted as overflow.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.Context(), cmd, args[0], &opts)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().BoolVar(&opts.canvas, "canvas", false, "also draw the layout as text")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func runLayout(ctx context.Context, cmd *cobra.Command, name string, opts *layoutOpts) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	s, root, err := loadScene(ctx, name)
	if err != nil {
		return err
	}
	w, h, err := opts.size.resolve(cfg, s)
	if err != nil {
		return err
	}

	rec := &render.Recorder{}
	got := newEngine(ctx, rec).Layout(root, 0, 0, w, h)
	if got.Width > w || got.Height > h {
		logger.Warn("layout overflows the window", "scene", s.Name, "need", fmt.Sprintf("%dx%d", got.Width, got.Height), "have", fmt.Sprintf("%dx%d", w, h))
	}
	logger.Debug("layout done", "scene", s.Name, "nodes", len(rec.Entries()))

	color := cfg.Render.Color && !opts.noColor
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %dx%d\n", s.Name, w, h)
	fmt.Fprintln(out, render.Table(render.Snapshot(root), color))

	if opts.canvas {
		c := render.NewCanvas(got.Width, got.Height, cfg.Render.CellWidth, cfg.Render.CellHeight)
		c.DrawAll(rec.Entries())
		fmt.Fprintln(out, c.Render(color))
	}
	return nil
}
