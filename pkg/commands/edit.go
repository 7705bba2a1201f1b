package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/commands/options"
	"github.com/habit100/pkg/runner/edit"
	"github.com/habit100/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ho := &options.HabitOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "edit a habit's title, tags, or type",
		Long: `Edit rewrites the named fields of a habit and leaves the rest alone.
Fields not given keep their current value; recorded days are never touched.`,
		Example: `
habit100 edit 1 물 2리터 마시기
habit100 edit 3 --type=log
habit100 edit 2 --tags="몸·에너지,정신·태도"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a habit id")
			}
			if err := io.ParseID(args[0]); err != nil {
				return err
			}
			title = strings.Join(args[1:], " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := edit.Edit{
				ID:          io.ID,
				Title:       title,
				Persistence: p,
			}
			if cmd.Flags().Changed("tags") {
				tags := ho.GetTags()
				s.Tags = &tags
			}
			if cmd.Flags().Changed("type") {
				t := ho.GetType()
				s.Type = &t
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ho)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
