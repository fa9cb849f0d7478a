package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/liststore"
	"tableflip.dev/itemlist/pkg/runner"
	"tableflip.dev/itemlist/pkg/store"
)

func TestUILaunchesOverSessionStore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, liststore.Key, `["Eggs"]`))

	var (
		loaded []string
		nopts  int
	)
	u := &UI{
		Session: runner.Session{Store: kv, ConfirmClear: true},
		Launch: func(ctx context.Context, ls *liststore.ListStore, opts ...app.Option) error {
			items, err := ls.Load(ctx)
			if err != nil {
				return err
			}
			for _, it := range items {
				loaded = append(loaded, it.String())
			}
			nopts = len(opts)
			return nil
		},
	}
	require.NoError(t, u.Do(ctx))
	assert.Equal(t, []string{"Eggs"}, loaded)
	assert.Equal(t, 2, nopts)
}

func TestUIWithoutStore(t *testing.T) {
	u := &UI{}
	assert.Error(t, u.Do(context.Background()))
}
