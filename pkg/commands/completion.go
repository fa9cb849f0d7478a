package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/liststore"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(itemlist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(itemlist completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// completeItems offers the stored items that start with toComplete,
// ignoring case.
func completeItems(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := context.Background()
	s, done, err := openSession(ctx, cmd, true)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer done()

	items, _ := liststore.New(s.Store, liststore.WithLogger(s.Logger)).Load(ctx)
	return itemCompletions(items, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func itemCompletions(items []item.Item, toComplete string) []string {
	prefix := strings.ToLower(toComplete)
	var out []string
	for _, it := range items {
		if strings.HasPrefix(strings.ToLower(it.String()), prefix) {
			out = append(out, it.String())
		}
	}
	return out
}
