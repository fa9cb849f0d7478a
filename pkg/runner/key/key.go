// Package key provides CLI helpers to display the terminal UI key legend.
package key

import (
	"context"
	"fmt"
	"io"

	binding "github.com/charmbracelet/bubbles/v2/key"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/itemlist/pkg/tui"
)

// Key prints the key bindings of the interactive list.
type Key struct {
	Out io.Writer
}

// Do renders the key legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, tui.Bindings())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders a binding table.
func (k *Key) Key(_ context.Context, out io.Writer, bindings []binding.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range bindings {
		h := b.Help()
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
