package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "filmctl",
		Short:         "Blown film process advisor CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newOptimizeCommand())
	rootCmd.AddCommand(newDiagnoseCommand())
	rootCmd.AddCommand(newMaterialsCommand())
	rootCmd.AddCommand(newDefectsCommand())

	return rootCmd
}
