package edit

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/liststore"
	"tableflip.dev/itemlist/pkg/printers"
	"tableflip.dev/itemlist/pkg/runner"
	"tableflip.dev/itemlist/pkg/store"
)

func TestEditRenames(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, liststore.Key, `["Eggs","Milk"]`))

	var out bytes.Buffer
	e := Edit{
		Target:  "milk",
		Text:    "Butter",
		Session: runner.Session{Store: kv},
		Printer: printers.New(&out, &out),
	}
	require.NoError(t, e.Do(ctx))

	got, err := liststore.New(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{"Eggs", "Butter"}, got)
	assert.Contains(t, out.String(), "Butter")
}

func TestEditUnknownTarget(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, liststore.Key, `["Eggs"]`))

	var out bytes.Buffer
	e := Edit{
		Target:  "Milk",
		Text:    "Butter",
		Session: runner.Session{Store: kv},
		Printer: printers.New(&out, &out),
	}
	assert.ErrorIs(t, e.Do(ctx), app.ErrUnknownItem)
}
