package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output errors as JSON.")
}

// HandleError wraps a command error as a JSON object when --json is set so
// scripted callers get a parseable failure.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		b, mErr := json.Marshal(map[string]string{"error": err.Error()})
		if mErr != nil {
			return mErr
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
