package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/scene"
)

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, s := range scene.Builtins() {
				rows = append(rows, []string{s.Name, fmt.Sprintf("%dx%d", s.Width, s.Height), s.Description})
			}

			color := configFromContext(cmd.Context()).Render.Color
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("Scene", "Size", "Description").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					base := lipgloss.NewStyle().Padding(0, 1)
					if !color {
						return base
					}
					switch {
					case row == table.HeaderRow:
						return base.Foreground(colorGray).Bold(true)
					case col == 0:
						return base.Inherit(styleTitle)
					case col == 1:
						return base.Inherit(styleValue)
					}
					return base.Inherit(styleDim)
				})

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}
