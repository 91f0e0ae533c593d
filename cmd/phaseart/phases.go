package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/phaseart/internal/phase"
)

func newPhasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "List the eight phases with their colours, shapes and motions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), phaseTable(phase.All()))
			return err
		},
	}
}

// swatch renders a coloured block. Terminals without colour get blanks.
func swatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("    ")
}

func phaseTable(phases []phase.Descriptor) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Phase", "Colour", "", "Shape", "Motion"})

	for _, d := range phases {
		tw.AppendRow(table.Row{
			strconv.Itoa(d.ZIndex),
			d.Name,
			d.Color,
			swatch(d.Color),
			d.Shape.String(),
			d.Motion.String(),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
