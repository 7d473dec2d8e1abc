package options

import (
	"github.com/spf13/cobra"
)

// SnapshotOptions selects where a snapshot goes to or comes from.
type SnapshotOptions struct {
	File      string
	Clipboard bool
}

// AddSnapshotArgs wires snapshot source/destination flags.
func AddSnapshotArgs(cmd *cobra.Command, o *SnapshotOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "",
		"Snapshot file path. Defaults to stdin/stdout.")
	cmd.Flags().BoolVar(&o.Clipboard, "clipboard", false,
		"Use the system clipboard instead of a file.")
}
