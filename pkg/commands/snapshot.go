package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
)

func addExport(topLevel *cobra.Command) {
	so := &options.SnapshotOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the planner as a portable snapshot",
		Example: `
weekly export > backup.json
weekly export --file backup.json
weekly export --clipboard
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			svc, err := loadService()
			if err != nil {
				return err
			}
			data, err := svc.Export(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}

			switch {
			case so.Clipboard:
				if err := clipboard.WriteAll(string(data)); err != nil {
					return fmt.Errorf("copy snapshot: %w", err)
				}
				fmt.Fprintln(os.Stderr, "snapshot copied to clipboard")
			case so.File != "":
				if err := os.WriteFile(so.File, data, 0o644); err != nil {
					return fmt.Errorf("write snapshot: %w", err)
				}
				fmt.Fprintf(os.Stderr, "snapshot written to %s\n", so.File)
			default:
				fmt.Println(string(data))
			}
			return nil
		},
	}

	options.AddSnapshotArgs(cmd, so)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	so := &options.SnapshotOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the planner with a snapshot",
		Long: "Import validates the snapshot before installing it; on a format\n" +
			"error the existing planner is left untouched. Import replaces the\n" +
			"whole planner, it does not merge.",
		Example: `
weekly import --file backup.json
weekly import --clipboard
cat backup.json | weekly import
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			var data []byte
			var err error
			switch {
			case so.Clipboard:
				text, err := clipboard.ReadAll()
				if err != nil {
					return fmt.Errorf("read clipboard: %w", err)
				}
				data = []byte(text)
			case so.File != "":
				data, err = os.ReadFile(so.File)
				if err != nil {
					return fmt.Errorf("read snapshot: %w", err)
				}
			default:
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			if err := svc.Import(data); err != nil {
				return oo.HandleError(err)
			}
			fmt.Println("snapshot imported")
			return nil
		},
	}

	options.AddSnapshotArgs(cmd, so)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
