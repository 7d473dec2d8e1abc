package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/printers"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.ItemOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item to the library",
		Example: `
weekly add Scales
weekly add "Bach Prelude" --color "#8b5cf6" --note "BWV 846"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}

			if _, err := svc.AddItem(strings.Join(args, " "), io.Color, io.Note); err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			pp.Title("Library")
			pp.Items(svc.Items.List()...)
			return nil
		},
	}

	options.AddItemArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
