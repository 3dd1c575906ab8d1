package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
)

// capacityCommand creates the capacity command. Without arguments it prints
// the seat capacity of every row count; with a seat total it prints the row
// plan for that parliament.
func (c *CLI) capacityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity [seats]",
		Short: "Show how many rows a parliament needs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), capacityTable())
				return nil
			}
			total, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidSeatCount, err, "not a seat count: %q", args[0])
			}
			return printPlan(total)
		},
	}
}

// capacityTable renders the rows-to-capacity table.
func capacityTable() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("ROWS", "CAPACITY", "RADIUS").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Inherit(StyleTitle)
			}
			if col == 1 {
				return s.Inherit(StyleNumber).Align(lipgloss.Right)
			}
			return s.Align(lipgloss.Right)
		})
	for rows := 1; rows <= layout.MaxRows; rows++ {
		t.Row(strconv.Itoa(rows), strconv.Itoa(layout.CapacityFor(rows)), fmt.Sprintf("%.4f", layout.Radius(rows)))
	}
	return t.String()
}

// printPlan prints the row plan for a parliament of total seats.
func printPlan(total int) error {
	rows, err := layout.PlanRows(total)
	if err != nil {
		return err
	}
	capacity := layout.CapacityFor(rows)
	printKeyValue("Seats", strconv.Itoa(total))
	printKeyValue("Rows", strconv.Itoa(rows))
	printKeyValue("Capacity", strconv.Itoa(capacity))
	printKeyValue("Empty", strconv.Itoa(capacity-total))
	printKeyValue("Radius", fmt.Sprintf("%.4f", layout.Radius(rows)))
	return nil
}
