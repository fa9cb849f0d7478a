package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an item",
		Example: `
itemlist add milk
itemlist add oat milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, done, err := openSession(ctx, cmd, false)
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			defer done()

			a := add.Add{
				Text:    strings.Join(args, " "),
				Session: s,
				Printer: printer(cmd),
			}
			err = a.Do(ctx)
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	topLevel.AddCommand(cmd)
}
