package commands

import (
	"github.com/spf13/cobra"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
itemlist ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}
