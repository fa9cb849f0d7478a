package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/liststore"
	"tableflip.dev/itemlist/pkg/store"
)

func TestResolvePrefersExact(t *testing.T) {
	items := []item.Item{"milk", "Milk"}
	assert.Equal(t, item.Item("Milk"), Resolve(items, "Milk"))
	assert.Equal(t, item.Item("milk"), Resolve(items, "MILK"))
	assert.Equal(t, item.Item("Bread"), Resolve(items, "Bread"))
}

func TestWarningFiltersPersistErrors(t *testing.T) {
	assert.NoError(t, Warning(nil))
	assert.NoError(t, Warning(&liststore.PersistError{Op: "add", Err: errors.New("x")}))
	assert.ErrorIs(t, Warning(app.ErrEmptyInput), app.ErrEmptyInput)
}

func TestSessionControllerLoads(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, liststore.Key, `["Eggs"]`))

	ctrl, err := Session{Store: kv}.Controller(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{"Eggs"}, ctrl.Items())
}
