// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ItemOptions captures the item fields commands can set.
type ItemOptions struct {
	Color string
	Note  string
}

// AddItemArgs wires item field flags on the provided command.
func AddItemArgs(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Color, "color", "c", "",
		"Color token for the item, defaults to the palette.")
	cmd.Flags().StringVarP(&o.Note, "note", "n", "",
		"Optional note shown alongside the item.")
}

// IDOptions toggles id display on listing commands.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs registers the id display flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show item ids.")
}
