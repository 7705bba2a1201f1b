package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/commands/options"
	"github.com/habit100/pkg/runner/remove"
	"github.com/habit100/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "delete a habit and all of its records",
		Example: `
habit100 delete 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a habit id")
			}
			return io.ParseID(args[0])
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := remove.Remove{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
