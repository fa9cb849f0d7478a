package clearall

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
)

// Clear removes every item.
type Clear struct {
	Confirm app.Confirmer

	Session runner.Session
	Printer *printers.PrettyPrint
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Session.Store == nil {
		return errors.New("can not clear, no store")
	}
	ctrl, err := n.Session.Controller(ctx, n.Printer, n.Confirm)
	if err != nil {
		return err
	}
	cleared, err := ctrl.ClearAll(ctx)
	if err := runner.Warning(err); err != nil {
		return err
	}
	if !cleared {
		_, _ = fmt.Fprintln(n.Printer.Out, "Not cleared.")
		return nil
	}
	n.Printer.Flush()
	return nil
}
