package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions selects machine-readable output for scripting callers.
type OutputOptions struct {
	JSON bool
}

// AddOutputArg registers the output format flag.
func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Report errors as JSON on stdout.")
}

// HandleError reports the error in the selected format. In JSON mode the
// error becomes a {"error": ...} object on stdout and the command itself
// exits clean; otherwise the error propagates to cobra.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !o.JSON {
		return err
	}
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
