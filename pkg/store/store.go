// Package store provides the durable key/value backends the item list is
// persisted into.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Store is a durable string key/value store. Implementations persist a write
// before returning from Set or Delete.
type Store interface {
	// Get returns the value for key. ok is false when the key was never set
	// or has been deleted.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("store: unknown backend")

// Open creates the Store selected by cfg. A nil cfg loads the configuration
// from the environment.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendDiskv, "":
		return NewDiskv(cfg.BasePath())
	case BackendSQLite:
		return NewSQLite(ctx, cfg.BasePath())
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend())
	}
}
