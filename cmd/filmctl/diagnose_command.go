package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scott198989/ParameterPath-Optimizer/internal/defects"
	"github.com/scott198989/ParameterPath-Optimizer/internal/diagnose"
	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
)

func newDiagnoseCommand() *cobra.Command {
	var (
		material   string
		defect     string
		meltTemp   float64
		screwSpeed float64
		lineSpeed  float64
		dieTemp    float64
	)

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Rank probable causes for an observed film defect",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := diagnose.Request{
				Material: materials.ID(material),
				Defect:   defects.ID(defect),
				Settings: diagnose.CurrentSettings{
					MeltTemp:   meltTemp,
					ScrewSpeed: screwSpeed,
					LineSpeed:  lineSpeed,
					DieTemp:    dieTemp,
				},
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid diagnosis request: %w", err)
			}

			result, err := diagnose.NewService().Diagnose(req)
			if err != nil {
				return err
			}

			printDiagnosis(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&material, "material", "m", "", "Material code (hdpe, ldpe, lldpe, evoh)")
	cmd.Flags().StringVarP(&defect, "defect", "d", "", "Defect code (see 'filmctl defects')")
	cmd.Flags().Float64Var(&meltTemp, "melt-temp", 0, "Current melt temperature, °F")
	cmd.Flags().Float64Var(&screwSpeed, "screw-speed", 0, "Current screw speed, RPM")
	cmd.Flags().Float64Var(&lineSpeed, "line-speed", 0, "Current line speed, ft/min")
	cmd.Flags().Float64Var(&dieTemp, "die-temp", 0, "Current die temperature, °F")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("defect")
	_ = cmd.MarkFlagRequired("melt-temp")
	_ = cmd.MarkFlagRequired("screw-speed")
	_ = cmd.MarkFlagRequired("line-speed")
	_ = cmd.MarkFlagRequired("die-temp")

	return cmd
}

func printDiagnosis(cmd *cobra.Command, r diagnose.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n%s\n\n", r.Name, r.Description)

	rows := make([][]string, 0, len(r.Causes))
	for _, cause := range r.Causes {
		rows = append(rows, []string{string(cause.Probability), cause.Label, cause.Explanation})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Probability", "Cause", "Explanation"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))

	for _, cause := range r.Causes {
		printList(cmd, "Adjustments: "+cause.Label, cause.Adjustments)
	}
	printList(cmd, "Recommendations", r.GeneralRecommendations)
}
