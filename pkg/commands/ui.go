package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"board"},
		Short:   "Open the interactive week board",
		Long: "The board shows the library and the week side by side. Pick an\n" +
			"item up with enter, move it with the arrow keys, and drop it with\n" +
			"enter again; esc cancels the gesture.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
