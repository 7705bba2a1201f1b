package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/commands/options"
	"github.com/habit100/pkg/runner/log"
	"github.com/habit100/pkg/store"
)

func addLog(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	do := &options.DayOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "append a log line to a habit for a day",
		Example: `
habit100 log 3 7시간 잤다
habit100 log 3 --day=-1 늦게 잤다
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a habit id and log text")
			}
			if err := io.ParseID(args[0]); err != nil {
				return err
			}
			text = strings.Join(args[1:], " ")

			return nil
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

			s := log.Log{
				ID:          io.ID,
				Day:         day,
				Text:        text,
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
