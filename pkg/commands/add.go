package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/commands/options"
	"github.com/habit100/pkg/runner/add"
	"github.com/habit100/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a habit",
		Example: `
habit100 add 물 마시기 --tags="몸·에너지"
habit100 add 기분 일기 --type=log
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a habit title")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := add.Add{
				Title:       title,
				Tags:        ho.GetTags(),
				Type:        ho.GetType(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ho)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
