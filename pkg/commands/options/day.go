// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/timeutil"
)

// DayOptions
type DayOptions struct {
	Day string
}

func AddDayArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		`Specify the day, example: --day="2026-02-28", --day=yesterday or --day=-1.`)
}

func (o *DayOptions) GetDay() (string, error) {
	return timeutil.ParseDay(o.Day, time.Now())
}
