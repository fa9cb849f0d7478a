// Package liststore owns the authoritative, ordered list of items and mirrors
// it into a key/value store after every mutation.
package liststore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/store"
)

// Key is the storage key the list is persisted under.
const Key = "items"

// PersistError reports that the in-memory list could not be mirrored to (or
// read from) the backing store. The in-memory list stays authoritative, so
// callers should surface it as a warning and carry on.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("liststore: %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// IsPersistError reports whether err carries a PersistError.
func IsPersistError(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}

// ListStore holds the ordered items. Every mutating call re-serializes and
// writes the whole list; there is no delta persistence.
//
// ListStore does not enforce uniqueness. Callers that want unique items check
// Exists first.
type ListStore struct {
	kv     store.Store
	items  []item.Item
	logger *slog.Logger
}

// Option configures a ListStore.
type Option func(*ListStore)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *ListStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty ListStore backed by kv. Call Load to read prior state.
func New(kv store.Store, opts ...Option) *ListStore {
	s := &ListStore{kv: kv, logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the in-memory list with the persisted one. A missing key
// yields an empty list. When the store cannot be read or holds something
// that is not a JSON array of strings, the list is left empty and a
// *PersistError is returned so the caller can warn without failing.
func (s *ListStore) Load(ctx context.Context) ([]item.Item, error) {
	s.items = nil
	if s.kv == nil {
		return s.All(), nil
	}
	raw, ok, err := s.kv.Get(ctx, Key)
	if err != nil {
		s.logger.Warn("load items", "error", err)
		return s.All(), &PersistError{Op: "load", Err: err}
	}
	if !ok || raw == "" {
		return s.All(), nil
	}
	var texts []string
	if err := json.Unmarshal([]byte(raw), &texts); err != nil {
		s.logger.Warn("decode items", "error", err)
		return s.All(), &PersistError{Op: "decode", Err: err}
	}
	s.items = item.FromStrings(texts)
	s.logger.Debug("loaded items", "count", len(s.items))
	return s.All(), nil
}

// All returns a copy of the current items in insertion order.
func (s *ListStore) All() []item.Item {
	out := make([]item.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *ListStore) Len() int { return len(s.items) }

// Add appends it and persists the list.
func (s *ListStore) Add(ctx context.Context, it item.Item) error {
	s.items = append(s.items, it)
	return s.persist(ctx, "add")
}

// Remove drops the first item whose text equals it exactly and persists the
// list. Removing an item that is not present still persists and is not an
// error.
func (s *ListStore) Remove(ctx context.Context, it item.Item) error {
	for i, cur := range s.items {
		if cur == it {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			break
		}
	}
	return s.persist(ctx, "remove")
}

// Clear empties the list and deletes the storage key.
func (s *ListStore) Clear(ctx context.Context) error {
	s.items = nil
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Delete(ctx, Key); err != nil {
		s.logger.Warn("clear items", "error", err)
		return &PersistError{Op: "clear", Err: err}
	}
	s.logger.Debug("cleared items")
	return nil
}

// Exists reports whether an item with text exists, ignoring case.
func (s *ListStore) Exists(text string) bool {
	for _, cur := range s.items {
		if cur.Same(text) {
			return true
		}
	}
	return false
}

// Contains reports whether an item with exactly this text exists.
func (s *ListStore) Contains(it item.Item) bool {
	for _, cur := range s.items {
		if cur == it {
			return true
		}
	}
	return false
}

func (s *ListStore) persist(ctx context.Context, op string) error {
	if s.kv == nil {
		return nil
	}
	b, err := Encode(s.items)
	if err != nil {
		return &PersistError{Op: op, Err: err}
	}
	if err := s.kv.Set(ctx, Key, string(b)); err != nil {
		s.logger.Warn("persist items", "op", op, "error", err)
		return &PersistError{Op: op, Err: err}
	}
	s.logger.Debug("persisted items", "op", op, "count", len(s.items))
	return nil
}

// Encode renders items in the persisted layout: a JSON array of strings.
func Encode(items []item.Item) ([]byte, error) {
	return json.Marshal(item.Strings(items))
}
