package app

import "tableflip.dev/itemlist/pkg/item"

// EditSession records which item is being renamed. The zero value is the
// idle state.
type EditSession struct {
	target item.Item
	active bool
}

// Target returns the item being edited and whether a session is active.
func (s EditSession) Target() (item.Item, bool) {
	return s.target, s.active
}

// Active reports whether an item is being edited.
func (s EditSession) Active() bool { return s.active }

// Is reports whether it is the session's target.
func (s EditSession) Is(it item.Item) bool {
	return s.active && s.target == it
}

func editing(it item.Item) EditSession {
	return EditSession{target: it, active: true}
}
