package ui

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/liststore"
	"tableflip.dev/itemlist/pkg/runner"
	"tableflip.dev/itemlist/pkg/tui"
)

// UI opens the interactive list editor.
type UI struct {
	Session runner.Session

	// Launch runs the program; tests replace it.
	Launch func(ctx context.Context, ls *liststore.ListStore, opts ...app.Option) error
}

func (u *UI) Do(ctx context.Context) error {
	if u.Session.Store == nil {
		return errors.New("can not open ui, no store")
	}
	logger := u.Session.Logger
	if logger == nil {
		logger = slog.Default()
	}
	launch := u.Launch
	if launch == nil {
		launch = tui.Run
	}

	ls := liststore.New(u.Session.Store, liststore.WithLogger(logger))
	logger.Debug("opening ui")
	return launch(ctx, ls,
		app.WithLogger(logger),
		app.WithConfirmClear(u.Session.ConfirmClear),
	)
}
