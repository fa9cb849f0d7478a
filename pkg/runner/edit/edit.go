package edit

import (
	"context"
	"errors"

	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
)

// Edit renames an existing item. The renamed item moves to the end of the
// list.
type Edit struct {
	Target string
	Text   string

	Session runner.Session
	Printer *printers.PrettyPrint
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Session.Store == nil {
		return errors.New("can not edit, no store")
	}
	ctrl, err := n.Session.Controller(ctx, n.Printer, nil)
	if err != nil {
		return err
	}
	target := runner.Resolve(ctrl.Items(), n.Target)
	if err := ctrl.SelectForEdit(target); err != nil {
		return err
	}
	if err := runner.Warning(ctrl.SubmitItem(ctx, n.Text)); err != nil {
		return err
	}
	n.Printer.Flush()
	return nil
}
