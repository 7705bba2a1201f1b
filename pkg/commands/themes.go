package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/runner/themes"
	"github.com/habit100/pkg/store"
)

func addThemes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "list the configured filter themes",
		Example: `
habit100 themes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			s := themes.Themes{
				Config: cfg,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
