package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/printers"
)

func addItems(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"list", "library"},
		Short:   "List the item library",
		Example: `
weekly items
weekly items --id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.Title("Library")
			pp.Items(svc.Items.List()...)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
