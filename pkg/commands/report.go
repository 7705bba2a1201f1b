package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/commands/options"
	"github.com/habit100/pkg/runner/report"
	"github.com/habit100/pkg/store"
)

func addReport(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "show what was recorded on a day",
		Long: `Report lists every check and log recorded on the day: one line per
checked habit, one line per log entry with its timestamp.`,
		Example: `
habit100 report
habit100 report --day=yesterday
habit100 report --day=2026-02-20
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

			s := report.Report{
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
