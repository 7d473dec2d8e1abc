package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: base.Wrap80("Weekly planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addItems(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addPlan(topLevel)
	addUnplan(topLevel)
	addMove(topLevel)
	addReorder(topLevel)
	addWeek(topLevel)
	addPrefs(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addCleanup(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// loadService builds the service over the configured store and performs the
// initial load that arms saving.
func loadService() (*app.Service, error) {
	gateway, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	svc := app.New(gateway)
	if err := svc.Load(); err != nil {
		return nil, err
	}
	return svc, nil
}
