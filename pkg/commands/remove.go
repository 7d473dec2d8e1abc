package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an item and unschedule it everywhere",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}
			if err := svc.RemoveItem(args[0]); err != nil {
				return oo.HandleError(err)
			}
			fmt.Println("removed")
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
