package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the keys of the interactive editor",
		Example: `
itemlist key
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			err := k.Do(context.Background())
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	topLevel.AddCommand(cmd)
}
