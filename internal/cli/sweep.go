package cli

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/render"
	"github.com/grindlemire/go-flex/internal/scene"
)

type sweepOpts struct {
	from, to, step int
	height         int
	jobs           int
	noColor        bool
}

func newSweepCmd() *cobra.Command {
	opts := sweepOpts{step: 50, jobs: runtime.GOMAXPROCS(0)}

	cmd := &cobra.Command{
		Use:   "sweep <scene>",
		Short: "Lay out a scene at a range of widths and compare leaf widths",
		Long: `Lay out a scene at every width from --from to --to in steps of --step.

Each width gets its own tree and engine, so widths are computed in parallel.
The output has one row per width and one column per leaf node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), cmd, args[0], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.from, "from", 0, "first width (default: half the scene width)")
	cmd.Flags().IntVar(&opts.to, "to", 0, "last width (default: the scene width)")
	cmd.Flags().IntVar(&opts.step, "step", opts.step, "width increment")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "available height (default: scene, then config)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of widths laid out concurrently")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

// sweepRow is the outcome at one width.
type sweepRow struct {
	width  int
	root   layout.Rect
	leaves []int
}

func runSweep(ctx context.Context, cmd *cobra.Command, name string, opts *sweepOpts) error {
	cfg := configFromContext(ctx)
	s, err := scene.Lookup(name)
	if err != nil {
		return err
	}

	size := sizeOpts{height: opts.height}
	w, h, err := size.resolve(cfg, s)
	if err != nil {
		return err
	}
	from, to := opts.from, opts.to
	if to <= 0 {
		to = w
	}
	if from <= 0 {
		from = to / 2
	}
	widths, err := sweepWidths(from, to, opts.step)
	if err != nil {
		return err
	}

	rows, err := sweep(ctx, s, widths, h, opts.jobs)
	if err != nil {
		return err
	}

	headers, err := leafHeaders(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), sweepTable(headers, rows, cfg.Render.Color && !opts.noColor))
	return nil
}

func sweepWidths(from, to, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	if from > to {
		return nil, fmt.Errorf("--from %d is greater than --to %d", from, to)
	}
	var widths []int
	for w := from; w <= to; w += step {
		widths = append(widths, w)
	}
	if widths[len(widths)-1] != to {
		widths = append(widths, to)
	}
	return widths, nil
}

// sweep lays the scene out once per width. Trees are not shared between
// goroutines: every width builds its own tree and engine.
func sweep(ctx context.Context, s *scene.Scene, widths []int, height, jobs int) ([]sweepRow, error) {
	logger := loggerFromContext(ctx)
	rows := make([]sweepRow, len(widths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, jobs))
	for i, w := range widths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			root, err := s.Build()
			if err != nil {
				return fmt.Errorf("build scene %s: %w", s.Name, err)
			}
			got := newEngine(ctx, nil).Layout(root, 0, 0, w, height)

			row := sweepRow{width: w, root: got}
			for _, leaf := range leaves(root) {
				row.leaves = append(row.leaves, leaf.Bounds().Width)
			}
			rows[i] = row
			logger.Debug("swept", "width", w, "root", got)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// leaves returns the visible leaves of root in layout order.
func leaves(root layout.Node) []layout.Node {
	var out []layout.Node
	layout.Walk(root, func(n layout.Node, _ int) {
		switch render.KindOf(n) {
		case render.KindButton, render.KindText, render.KindLink, render.KindEdit:
			out = append(out, n)
		}
	})
	return out
}

func leafHeaders(s *scene.Scene) ([]string, error) {
	root, err := s.Build()
	if err != nil {
		return nil, err
	}
	var headers []string
	for _, leaf := range leaves(root) {
		headers = append(headers, render.Label(leaf, 18))
	}
	return headers, nil
}

func sweepTable(headers []string, rows []sweepRow, color bool) string {
	data := make([][]string, 0, len(rows))
	overflow := make([]bool, 0, len(rows))
	for _, r := range rows {
		line := []string{strconv.Itoa(r.width), fmt.Sprintf("%dx%d", r.root.Width, r.root.Height)}
		for _, w := range r.leaves {
			line = append(line, strconv.Itoa(w))
		}
		data = append(data, line)
		overflow = append(overflow, r.root.Width > r.width)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(append([]string{"Width", "Root"}, headers...)...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			if !color {
				return base
			}
			switch {
			case row == table.HeaderRow:
				return base.Inherit(headerStyle)
			case row >= 0 && row < len(overflow) && overflow[row]:
				return base.Foreground(colorRed)
			case col == 0:
				return base.Foreground(colorCyan)
			}
			return base
		})
	if color {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(colorDim))
	}
	return t.Render()
}
