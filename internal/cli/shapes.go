package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blocks/pkg/board"
	"github.com/matzehuels/blocks/pkg/shape"
)

// shapesCommand creates the command listing the active shape catalog.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the shapes pieces are drawn from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.cfg.Catalog()
			if err != nil {
				return err
			}
			fmt.Println(catalogTable(cat))
			printDetail("%d shapes, largest extent %d", cat.Count(), cat.MaxExtent())
			return nil
		},
	}
}

// catalogTable renders one row per shape with a preview of its mask.
func catalogTable(cat *shape.Catalog) string {
	shapes := cat.All()
	rows := make([][]string, len(shapes))
	for i, s := range shapes {
		// Cycle through the piece colors so neighbouring rows differ.
		style := colorStyle(board.Color(1 + i%9))
		rows[i] = []string{
			fmt.Sprint(i),
			s.Name(),
			fmt.Sprintf("%dx%d", s.Width(), s.Height()),
			fmt.Sprint(s.Area()),
			renderShape(s, style),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		BorderRow(true).
		Headers("ID", "Name", "Box", "Cells", "Shape").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
