package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:     "ls [query]",
		Aliases: []string{"get", "list"},
		Short:   "List items, optionally only those containing query",
		Long: `List items in the order they were added. With a query, only items
containing it (ignoring case) are shown.`,
		Example: `
itemlist ls
itemlist ls milk
itemlist ls -o json
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, done, err := openSession(ctx, cmd, false)
			if err != nil {
				return oo.HandleError(cmd.OutOrStdout(), err)
			}
			defer done()

			g := get.Get{
				Query:   strings.Join(args, " "),
				Format:  fo.Format,
				All:     fo.All,
				Session: s,
				Printer: printer(cmd),
			}
			err = g.Do(ctx)
			return oo.HandleError(cmd.OutOrStdout(), err)
		},
	}

	options.AddFormatArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
