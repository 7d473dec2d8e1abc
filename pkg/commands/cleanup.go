package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addCleanup(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete legacy and unrelated keys from the store",
		Long: "Removes data left behind by earlier app versions. Safe to run\n" +
			"repeatedly; current planner keys are never touched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}
			if err := svc.PurgeLegacy(); err != nil {
				return err
			}
			fmt.Println("old data cleared")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
