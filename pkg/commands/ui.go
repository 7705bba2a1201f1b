package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/habit100/pkg/runner/ui"
	"github.com/habit100/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive habit board",
		Example: `
habit100 ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{Persistence: p, Themes: cfg.Themes()}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
