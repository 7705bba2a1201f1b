package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions
type FilterOptions struct {
	Tag string
	All bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Tag, "filter", "f", "",
		"Only show habits carrying this tag.")
}

func AddAllArg(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Include inactive habits.")
}
