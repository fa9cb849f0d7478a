package clearall

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/liststore"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
	"tableflip.dev/itemlist/pkg/store"
)

func TestClearHonoursConfirmPolicy(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, liststore.Key, `["Eggs","Milk"]`))

	var out bytes.Buffer
	c := Clear{
		Confirm: app.Always(false),
		Session: runner.Session{Store: kv, ConfirmClear: true},
		Printer: printers.New(&out, &out),
	}
	require.NoError(t, c.Do(ctx))
	assert.Contains(t, out.String(), "Not cleared.")
	_, ok, _ := kv.Get(ctx, liststore.Key)
	assert.True(t, ok)

	out.Reset()
	c.Session.ConfirmClear = false
	c.Printer = printers.New(&out, &out)
	require.NoError(t, c.Do(ctx))
	assert.Contains(t, out.String(), "Items - 0 items")
	_, ok, _ = kv.Get(ctx, liststore.Key)
	assert.False(t, ok)
}
