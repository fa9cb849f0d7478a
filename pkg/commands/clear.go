package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/runner/clearall"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item",
		Long: `Remove every item. Asks first when confirm_clear is set in the
config file or ITEMLIST_CONFIRM_CLEAR is true.`,
		Example: `
itemlist clear
itemlist clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, done, err := openSession(ctx, cmd, false)
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			defer done()

			c := clearall.Clear{
				Confirm: co.Confirmer(cmd.InOrStdin(), cmd.OutOrStdout()),
				Session: s,
				Printer: printer(cmd),
			}
			err = c.Do(ctx)
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	options.AddConfirmArg(cmd, co)

	topLevel.AddCommand(cmd)
}
