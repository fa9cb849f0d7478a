package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv stores each key as one file under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv returns a Store rooted at basePath, creating the directory if
// needed.
func NewDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string { return []string{} }

// BasePath returns the directory backing the store.
func (s *Diskv) BasePath() string { return s.basePath }

func (s *Diskv) Get(_ context.Context, key string) (string, bool, error) {
	if !s.d.Has(key) {
		return "", false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

// Set writes value and syncs it to disk before returning.
func (s *Diskv) Set(_ context.Context, key, value string) error {
	if err := s.d.WriteStream(key, strings.NewReader(value), true); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *Diskv) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (s *Diskv) Close() error { return nil }
