package commands

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/itemlist/pkg/commands/options"
	"tableflip.dev/itemlist/pkg/runner/ui"
)

var (
	oo = &options.OutputOptions{}
	so = &options.StoreOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "itemlist",
		Short: base.Wrap80("Keep a short list of things on the command line."),
		Long: base.Wrap80("Keep a short list of things on the command line. Run " +
			"without arguments in a terminal to open the interactive editor."),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if termenv.EnvColorProfile() == termenv.Ascii {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return cmd.Help()
			}
			return runUI(cmd)
		},
	}

	options.AddStoreArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addGet(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func runUI(cmd *cobra.Command) error {
	ctx := context.Background()
	s, done, err := openSession(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer done()

	u := ui.UI{Session: s}
	return u.Do(ctx)
}
