package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/itemlist/pkg/store"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestTextHandlerFiltersByLevel(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	log := New(store.LogConfig{Level: "warn"}, &buf)

	log.Info("hidden")
	log.Warn("persist items", "op", "add")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WRN persist items")
	assert.Contains(t, out, "op=add")
}

func TestTextHandlerGroupsAndAttrs(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	log := New(store.LogConfig{Level: "debug"}, &buf).With("backend", "diskv").WithGroup("store")

	log.Debug("loaded", "count", 3)
	assert.Contains(t, buf.String(), "DBG loaded backend=diskv store.count=3")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(store.LogConfig{Level: "info", Format: "json"}, &buf)
	log.Info("item added", "item", "Eggs")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "item added", rec["msg"])
	assert.Equal(t, "Eggs", rec["item"])
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "itemlist.log")
	log, closer, err := Open(store.LogConfig{Level: "info", Format: "json", File: path}, os.Stderr)
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}
