package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/liststore"
)

func TestScreenInputIsTakenOnce(t *testing.T) {
	s := NewScreen()
	_, ok := s.takeInput()
	assert.False(t, ok)

	s.SetInput("Milk", app.ModeUpdate)
	text, ok := s.takeInput()
	assert.True(t, ok)
	assert.Equal(t, "Milk", text)
	assert.Equal(t, app.ModeUpdate, s.Mode())

	_, ok = s.takeInput()
	assert.False(t, ok)
}

func TestScreenVisibleRows(t *testing.T) {
	s := NewScreen()
	s.Render([]app.Row{{Item: "Eggs"}, {Item: "Milk", Hidden: true}, {Item: "Bread"}})
	assert.Len(t, s.Rows(), 3)
	assert.Equal(t, []app.Row{{Item: "Eggs"}, {Item: "Bread"}}, s.VisibleRows())
}

func TestClassify(t *testing.T) {
	assert.Equal(t, severityInfo, classify(nil))
	assert.Equal(t, severityWarning, classify(&liststore.PersistError{Op: "save", Err: errors.New("disk full")}))
	assert.Equal(t, severityError, classify(app.ErrEmptyInput))
	assert.Equal(t, severityError, classify(app.ErrUnknownItem))
}
