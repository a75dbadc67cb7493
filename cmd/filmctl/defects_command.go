package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
)

func newDefectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defects [id]",
		Short: "List recognized defects or show one defect's cause table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printDefectList(cmd)
				return nil
			}
			def, err := defects.Get(defects.ID(args[0]))
			if err != nil {
				return err
			}
			printDefectProfile(cmd, def)
			return nil
		},
	}
	return cmd
}

func printDefectList(cmd *cobra.Command) {
	rows := make([][]string, 0, 13)
	for _, id := range defects.All() {
		def, _ := defects.Get(id)
		rows = append(rows, []string{string(def.ID), def.Name, def.Description})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Defect", "Description"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
}

func printDefectProfile(cmd *cobra.Command, def defects.Profile) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n%s\n\n", def.Name, def.Description)

	rows := make([][]string, 0, len(def.Causes))
	for _, cause := range def.Causes {
		rows = append(rows, []string{string(cause.Probability), cause.Label, cause.Explanation})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Probability", "Cause", "Explanation"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))

	for _, cause := range def.Causes {
		printList(cmd, "Adjustments: "+cause.Label, cause.Adjustments)
	}
	printList(cmd, "Recommendations", def.GeneralRecommendations)
}
