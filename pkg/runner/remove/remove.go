package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
)

// Remove deletes one item after confirmation.
type Remove struct {
	Text    string
	Confirm app.Confirmer

	Session runner.Session
	Printer *printers.PrettyPrint
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Session.Store == nil {
		return errors.New("can not remove, no store")
	}
	ctrl, err := n.Session.Controller(ctx, n.Printer, n.Confirm)
	if err != nil {
		return err
	}
	target := runner.Resolve(ctrl.Items(), n.Text)
	removed, err := ctrl.RemoveItem(ctx, target)
	if err := runner.Warning(err); err != nil {
		return err
	}
	if !removed {
		_, _ = fmt.Fprintln(n.Printer.Out, "Not removed.")
		return nil
	}
	n.Printer.Flush()
	return nil
}
