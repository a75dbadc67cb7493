package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

func newMaterialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials [id]",
		Short: "List supported materials or show one material's processing profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printMaterialList(cmd)
				return nil
			}
			mat, err := materials.Get(materials.ID(args[0]))
			if err != nil {
				return err
			}
			printMaterialProfile(cmd, mat)
			return nil
		},
	}
	return cmd
}

func printMaterialList(cmd *cobra.Command) {
	rows := make([][]string, 0, 4)
	for _, id := range materials.All() {
		mat, _ := materials.Get(id)
		rows = append(rows, []string{
			string(mat.ID),
			mat.Name,
			fmt.Sprintf("%.0f-%.0f", mat.MeltTempRange.Min, mat.MeltTempRange.Max),
			fmt.Sprintf("%.1f-%.1f", mat.BlowUpRatioRange.Min, mat.BlowUpRatioRange.Max),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Material", "Melt Temp °F", "BUR Range"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	))
}

func printMaterialProfile(cmd *cobra.Command, mat materials.Profile) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s (%s)\n\n", mat.Name, mat.ID)

	fmt.Fprintln(out, renderTable(
		[]string{"Property", "Value"},
		[][]string{
			{"Melt temp range", fmt.Sprintf("%.0f-%.0f °F", mat.MeltTempRange.Min, mat.MeltTempRange.Max)},
			{"Processing temp range", fmt.Sprintf("%.0f-%.0f °F", mat.ProcessingTempRange.Min, mat.ProcessingTempRange.Max)},
			{"Screw speed range", fmt.Sprintf("%.0f-%.0f RPM", mat.ScrewSpeedRange.Min, mat.ScrewSpeedRange.Max)},
			{"Melt pressure range", fmt.Sprintf("%.0f-%.0f PSI", mat.MeltPressureRange.Min, mat.MeltPressureRange.Max)},
			{"Blow-up ratio range", fmt.Sprintf("%.1f-%.1f", mat.BlowUpRatioRange.Min, mat.BlowUpRatioRange.Max)},
			{"Frost line factor", fmt.Sprintf("%.1f", mat.FrostLineFactor)},
			{"Density", fmt.Sprintf("%.3f lb/in³", mat.Density)},
		},
		[]columnAlignment{alignLeft, alignRight},
	))

	fmt.Fprintln(out, renderTable(
		[]string{"Barrel Zone", "Min °F", "Rec °F", "Max °F"},
		[][]string{
			{"Feed", zoneCell(mat.Barrel.Feed.Min), zoneCell(mat.Barrel.Feed.Recommended), zoneCell(mat.Barrel.Feed.Max)},
			{"Compression", zoneCell(mat.Barrel.Compression.Min), zoneCell(mat.Barrel.Compression.Recommended), zoneCell(mat.Barrel.Compression.Max)},
			{"Metering", zoneCell(mat.Barrel.Metering.Min), zoneCell(mat.Barrel.Metering.Recommended), zoneCell(mat.Barrel.Metering.Max)},
			{"Die", zoneCell(mat.Barrel.Die.Min), zoneCell(mat.Barrel.Die.Recommended), zoneCell(mat.Barrel.Die.Max)},
		},
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	))

	printList(cmd, "Notes", mat.Notes)
}

func zoneCell(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
