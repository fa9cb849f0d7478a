package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <item>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an item",
		Example: `
itemlist rm milk
itemlist rm "oat milk" --yes
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeItems,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, done, err := openSession(ctx, cmd, false)
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			defer done()

			r := remove.Remove{
				Text:    strings.Join(args, " "),
				Confirm: co.Confirmer(cmd.InOrStdin(), cmd.OutOrStdout()),
				Session: s,
				Printer: printer(cmd),
			}
			err = r.Do(ctx)
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	options.AddConfirmArg(cmd, co)

	topLevel.AddCommand(cmd)
}
