package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scott198989/ParameterPath-Optimizer/internal/materials"
	"github.com/scott198989/ParameterPath-Optimizer/internal/optimize"
)

func newOptimizeCommand() *cobra.Command {
	var (
		material string
		od       float64
		gauge    float64
		rate     float64
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Recommend machine settings for a production target",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := optimize.Request{
				Material:       materials.ID(material),
				TargetOD:       od,
				TargetGauge:    gauge,
				ProductionRate: rate,
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid target spec: %w", err)
			}

			settings, err := optimize.NewService().Optimize(req)
			if err != nil {
				return err
			}

			printSettings(cmd, settings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&material, "material", "m", "", "Material code (hdpe, ldpe, lldpe, evoh)")
	cmd.Flags().Float64Var(&od, "od", 0, "Target bubble outside diameter, inches")
	cmd.Flags().Float64Var(&gauge, "gauge", 0, "Target film thickness, mils")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Target production rate, lbs/hr")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("od")
	_ = cmd.MarkFlagRequired("gauge")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func printSettings(cmd *cobra.Command, s optimize.Settings) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n\n", s.MaterialName)

	rows := [][]string{
		{"Die size", fmt.Sprintf("%.0f in", s.DieSize)},
		{"Blow-up ratio", fmt.Sprintf("%.2f", s.BlowUpRatio)},
		{"Layflat width", fmt.Sprintf("%.1f in", s.LayflatWidth)},
		{"Barrel feed", fmt.Sprintf("%.0f °F", s.Barrel.Feed)},
		{"Barrel compression", fmt.Sprintf("%.0f °F", s.Barrel.Compression)},
		{"Barrel metering", fmt.Sprintf("%.0f °F", s.Barrel.Metering)},
		{"Die temperature", fmt.Sprintf("%.0f °F", s.Barrel.Die)},
		{"Screw speed", fmt.Sprintf("%d RPM (%d-%d)", s.ScrewSpeed.Recommended, s.ScrewSpeed.Min, s.ScrewSpeed.Max)},
		{"Line speed", fmt.Sprintf("%d ft/min (%d-%d)", s.LineSpeed.Recommended, s.LineSpeed.Min, s.LineSpeed.Max)},
		{"Melt pressure", fmt.Sprintf("%d PSI", s.MeltPressure)},
		{"Frost line", fmt.Sprintf("%.1f in (%.1f-%.1f)", s.FrostLine.Optimal, s.FrostLine.Min, s.FrostLine.Max)},
		{"Die gap", fmt.Sprintf("%.3f in", s.GaugeControl.DieGapSetting)},
		{"Gauge tolerance", s.GaugeControl.TargetVariation},
		{"IBC", yesNo(s.IBC.Recommended)},
		{"Bubble stability", fmt.Sprintf("%s (score %d)", s.Stability.Rating, s.Stability.Score)},
		{"Confidence", fmt.Sprintf("%s (score %d)", s.Confidence.Level, s.Confidence.Score)},
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Setting", "Recommendation"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))

	printList(cmd, "Air ring", []string{s.AirRing.LipGap, s.AirRing.AirVelocity, s.AirRing.CoolingCapacity})
	printList(cmd, "Nip rollers", []string{s.NipRollers.Speed, s.NipRollers.Pressure, s.NipRollers.Temperature})
	if s.IBC.Recommended {
		printList(cmd, "IBC", []string{s.IBC.AirFlow, s.IBC.Notes})
	}
	printList(cmd, "Critical parameters", s.CriticalParameters)
	printList(cmd, "Notes", s.Notes)
	printList(cmd, "Stability factors", s.Stability.Factors)
	printList(cmd, "Confidence notes", s.Confidence.Notes)
}

func printList(cmd *cobra.Command, title string, items []string) {
	if len(items) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
