package options

import (
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/printers"
)

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not ask for confirmation.")
}

// Confirmer answers yes when --yes is set and asks on in/out otherwise.
func (o *ConfirmOptions) Confirmer(in io.Reader, out io.Writer) app.Confirmer {
	if o.Yes {
		return app.Always(true)
	}
	return &printers.Prompt{In: in, Out: out}
}
