package liststore

import (
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/store"
)

// flakyStore fails reads or writes on demand.
type flakyStore struct {
	*store.Memory
	failGet bool
	failSet bool
	failDel bool
}

var errUnavailable = errors.New("storage unavailable")

func (f *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errUnavailable
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errUnavailable
	}
	return f.Memory.Set(ctx, key, value)
}

func (f *flakyStore) Delete(ctx context.Context, key string) error {
	if f.failDel {
		return errUnavailable
	}
	return f.Memory.Delete(ctx, key)
}

func items(texts ...string) []item.Item {
	return item.FromStrings(texts)
}

func TestLoadFirstRunIsEmpty(t *testing.T) {
	s := New(store.NewMemory())
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, s.Len())
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	for _, seq := range [][]item.Item{
		nil,
		items("Eggs"),
		items("Eggs", "Milk", "Bread"),
		items("Milk", "milk", "Milk"),
	} {
		kv := store.NewMemory()
		s := New(kv)
		for _, it := range seq {
			require.NoError(t, s.Add(ctx, it))
		}

		reloaded := New(kv)
		got, err := reloaded.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, item.Strings(seq), item.Strings(got))
	}
}

func TestRoundTripOnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	kv, err := store.NewDiskv(dir)
	require.NoError(t, err)
	s := New(kv)
	for _, it := range items("Eggs", "Milk", "Bread") {
		require.NoError(t, s.Add(ctx, it))
	}

	kv2, err := store.NewDiskv(dir)
	require.NoError(t, err)
	got, err := New(kv2).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, items("Eggs", "Milk", "Bread"), got)
}

func TestPersistedLayout(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s := New(kv)
	for _, it := range items("Eggs", "Milk", "Bread") {
		require.NoError(t, s.Add(ctx, it))
	}

	raw, ok, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	require.True(t, ok)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "persisted_layout", []byte(raw))
}

func TestRemoveFirstExactMatch(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory())
	for _, it := range items("Milk", "Eggs", "Milk") {
		require.NoError(t, s.Add(ctx, it))
	}

	require.NoError(t, s.Remove(ctx, "Milk"))
	assert.Equal(t, items("Eggs", "Milk"), s.All())

	require.NoError(t, s.Remove(ctx, "eggs"), "remove is exact-match")
	assert.Equal(t, items("Eggs", "Milk"), s.All())
}

func TestRemoveMissingStillPersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s := New(kv)
	require.NoError(t, s.Add(ctx, "Eggs"))
	require.NoError(t, kv.Delete(ctx, Key))

	require.NoError(t, s.Remove(ctx, "Butter"))
	raw, ok, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["Eggs"]`, raw)
}

func TestClearThenLoadIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s := New(kv)
	require.NoError(t, s.Add(ctx, "Eggs"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	got, err := New(kv).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	_, ok, _ := kv.Get(ctx, Key)
	assert.False(t, ok, "clear removes the key")
}

func TestExistsIgnoresCase(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory())
	require.NoError(t, s.Add(ctx, "Milk"))

	assert.True(t, s.Exists("milk"))
	assert.True(t, s.Exists("MILK"))
	assert.False(t, s.Exists("Milkshake"))
	assert.True(t, s.Contains("Milk"))
	assert.False(t, s.Contains("milk"))
}

func TestAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemory())
	require.NoError(t, s.Add(ctx, "Eggs"))

	got := s.All()
	got[0] = "Changed"
	assert.Equal(t, items("Eggs"), s.All())
}

func TestLoadDegradesWhenUnreadable(t *testing.T) {
	kv := &flakyStore{Memory: store.NewMemory(), failGet: true}
	s := New(kv)
	got, err := s.Load(context.Background())
	assert.Empty(t, got)
	assert.True(t, IsPersistError(err))
	assert.ErrorIs(t, err, errUnavailable)
}

func TestLoadDegradesOnCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, Key, `{"not":"a list"}`))

	got, err := New(kv).Load(ctx)
	assert.Empty(t, got)
	assert.True(t, IsPersistError(err))
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	kv := &flakyStore{Memory: store.NewMemory(), failSet: true, failDel: true}
	s := New(kv)

	err := s.Add(ctx, "Eggs")
	require.Error(t, err)
	var pe *PersistError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "add", pe.Op)
	assert.Equal(t, items("Eggs"), s.All(), "in-memory list stays authoritative")

	err = s.Clear(ctx)
	assert.True(t, IsPersistError(err))
	assert.Empty(t, s.All())
}
