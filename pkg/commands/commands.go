package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/habit100/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "habit100",
		Short: base.Wrap80("Track daily habits with checks and logs on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addCheck(topLevel)
	addLog(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addReport(topLevel)
	addThemes(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}
