package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
)

// Output formats understood by Get.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Get prints the items matching Query.
type Get struct {
	Query  string
	Format string
	All    bool

	Session runner.Session
	Printer *printers.PrettyPrint
}

func (n *Get) Do(ctx context.Context) error {
	if n.Session.Store == nil {
		return errors.New("can not get, no store")
	}
	ctrl, err := n.Session.Controller(ctx, n.Printer, nil)
	if err != nil {
		return err
	}
	ctrl.Filter(n.Query)

	switch n.Format {
	case "", FormatText:
		n.Printer.ShowAll = n.All
		n.Printer.Flush()
		return nil
	case FormatJSON:
		b, err := json.MarshalIndent(item.Strings(ctrl.Visible()), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(n.Printer.Out, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(item.Strings(ctrl.Visible()))
		if err != nil {
			return err
		}
		_, err = n.Printer.Out.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q", n.Format)
	}
}
