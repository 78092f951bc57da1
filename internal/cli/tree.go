package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

type treeOpts struct {
	size   sizeOpts
	output string
	format string
}

func newTreeCmd() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree <scene>",
		Short: "Export the laid-out tree as Graphviz DOT or SVG",
		Long: `Lay out a scene and export its node tree, with each node's rectangle, as a diagram.

Without --output the DOT source is written to stdout. The format defaults to the
output file's extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd.Context(), cmd, args[0], &opts)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg")

	return cmd
}

func runTree(ctx context.Context, cmd *cobra.Command, name string, opts *treeOpts) error {
	format, err := treeFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	s, root, err := loadScene(ctx, name)
	if err != nil {
		return err
	}
	w, h, err := opts.size.resolve(configFromContext(ctx), s)
	if err != nil {
		return err
	}
	newEngine(ctx, nil).Layout(root, 0, 0, w, h)

	data := []byte(render.ToDOT(render.Snapshot(root)))
	if format == formatSVG {
		if data, err = render.RenderSVG(ctx, string(data)); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("✓")+" "+opts.output)
	return nil
}

// treeFormat resolves the output format from the flag or the file
// extension.
func treeFormat(flag, output string) (string, error) {
	format := strings.ToLower(flag)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	}
	switch format {
	case "", formatDOT, "gv":
		return formatDOT, nil
	case formatSVG:
		return formatSVG, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want dot or svg)", format)
	}
}
