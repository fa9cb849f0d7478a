// Package runner holds what every command-line verb needs to drive the list
// controller.
package runner

import (
	"context"
	"log/slog"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/liststore"
	"tableflip.dev/itemlist/pkg/store"
)

// Session carries the backing store and policies for one command invocation.
type Session struct {
	Store        store.Store
	Logger       *slog.Logger
	ConfirmClear bool
}

// Controller builds a controller over the session's store and loads the
// list. A store that cannot be read is reported to d and the controller
// starts empty.
func (s Session) Controller(ctx context.Context, d app.Display, c app.Confirmer) (*app.Controller, error) {
	ls := liststore.New(s.Store, liststore.WithLogger(s.Logger))
	ctrl := app.New(ls, d, c,
		app.WithLogger(s.Logger),
		app.WithConfirmClear(s.ConfirmClear),
	)
	if err := Warning(ctrl.Start(ctx)); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// Warning drops storage warnings, which the display has already reported,
// and passes every other error through.
func Warning(err error) error {
	if liststore.IsPersistError(err) {
		return nil
	}
	return err
}

// Resolve maps text typed on the command line to an item in items: an exact
// match wins, then the first match ignoring case. Unmatched text is returned
// as typed.
func Resolve(items []item.Item, text string) item.Item {
	for _, it := range items {
		if it.String() == text {
			return it
		}
	}
	for _, it := range items {
		if it.Same(text) {
			return it
		}
	}
	return item.Item(text)
}
