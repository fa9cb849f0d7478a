package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	to := ""
	cmd := &cobra.Command{
		Use:   "edit <item> --to <text>",
		Short: "Replace an item's text",
		Long: `Replace an item's text. The item is matched exactly, then ignoring
case. The updated item moves to the end of the list.`,
		Example: `
itemlist edit milk --to "oat milk"
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

			e := edit.Edit{
				Target:  strings.Join(args, " "),
				Text:    to,
				Session: s,
				Printer: printer(cmd),
			}
			err = e.Do(ctx)
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "The new text.")
	_ = cmd.MarkFlagRequired("to")

	topLevel.AddCommand(cmd)
}
