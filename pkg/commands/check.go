package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/commands/options"
	"github.com/habit100/pkg/runner/check"
	"github.com/habit100/pkg/store"
)

func addCheck(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"toggle"},
		Short:   "toggle a habit's check for a day",
		Example: `
habit100 check 1
habit100 check 1 --day=yesterday
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
			day, err := do.GetDay()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := check.Check{
				ID:          io.ID,
				Day:         day,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
