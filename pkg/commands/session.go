package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/itemlist/pkg/logging"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
	"tableflip.dev/itemlist/pkg/store"
)

// openSession loads the configuration and opens the store for one command.
// The returned func releases both. Tests replace it.
var openSession = func(ctx context.Context, cmd *cobra.Command, interactive bool) (runner.Session, func(), error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return runner.Session{}, nil, err
	}

	logger, closer, err := logging.Open(cfg.Log(), cmd.ErrOrStderr())
	if err != nil {
		return runner.Session{}, nil, err
	}
	// The terminal belongs to the UI; only a log file gets output.
	if interactive && cfg.Log().File == "" {
		logger = logging.Discard()
	}

	kv, err := store.Open(ctx, cfg)
	if err != nil {
		_ = closer.Close()
		return runner.Session{}, nil, err
	}
	logger.Debug("store opened", "backend", cfg.Backend(), "path", cfg.BasePath())

	done := func() {
		if err := kv.Close(); err != nil {
			logger.Warn("closing store", "error", err)
		}
		_ = closer.Close()
	}
	return runner.Session{
		Store:        kv,
		Logger:       logger,
		ConfirmClear: cfg.ConfirmClear(),
	}, done, nil
}

func printer(cmd *cobra.Command) *printers.PrettyPrint {
	return printers.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}
