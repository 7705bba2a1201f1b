package options

import (
	"github.com/spf13/cobra"

	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/tracker"
)

// HabitOptions
type HabitOptions struct {
	Tags string
	Type string
}

func AddHabitArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVarP(&o.Tags, "tags", "t", "",
		`Comma separated tags, example: --tags="수면·환경,몸·에너지".`)
	cmd.Flags().StringVar(&o.Type, "type", "",
		"Habit type, check or log. Anything else falls back to check.")
}

func (o *HabitOptions) GetTags() []string {
	return tracker.SplitTags(o.Tags)
}

func (o *HabitOptions) GetType() habit.Type {
	return habit.ParseType(o.Type)
}
