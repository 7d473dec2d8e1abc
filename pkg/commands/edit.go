package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/item"
	"tableflip.dev/weekly/pkg/printers"
)

func addEdit(topLevel *cobra.Command) {
	var title, clr, note string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item's title, color, or note",
		Example: `
weekly edit 5f3a... --title "Bach Prelude"
weekly edit 5f3a... --color "#22c55e"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			p := item.Patch{}
			if cmd.Flags().Changed("title") {
				p.Title = &title
			}
			if cmd.Flags().Changed("color") {
				p.Color = &clr
			}
			if cmd.Flags().Changed("note") {
				p.Note = &note
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			if _, err := svc.UpdateItem(args[0], p); err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{ShowID: true}
			pp.Title("Library")
			pp.Items(svc.Items.List()...)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVar(&clr, "color", "", "New color token.")
	cmd.Flags().StringVar(&note, "note", "", "New note, empty clears it.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
