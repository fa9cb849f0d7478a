package add

import (
	"context"
	"errors"

	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
)

// Add appends one item to the list.
type Add struct {
	Text string

	Session runner.Session
	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Session.Store == nil {
		return errors.New("can not add, no store")
	}
	ctrl, err := n.Session.Controller(ctx, n.Printer, nil)
	if err != nil {
		return err
	}
	if err := runner.Warning(ctrl.SubmitItem(ctx, n.Text)); err != nil {
		return err
	}
	n.Printer.Flush()
	return nil
}
