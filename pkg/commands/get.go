package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/commands/options"
	"github.com/habit100/pkg/runner/get"
	"github.com/habit100/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "list habits with their state for a day",
		Example: `
habit100 get
habit100 get --day=yesterday
habit100 get --filter="몸·에너지"
habit100 get --all
`,
		Args: cobra.NoArgs,
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

			s := get.Get{
				Day:         day,
				FilterTag:   fo.Tag,
				All:         fo.All,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, do)
	options.AddFilterArgs(cmd, fo)
	options.AddAllArg(cmd, fo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
