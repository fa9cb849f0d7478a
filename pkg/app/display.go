package app

import "tableflip.dev/itemlist/pkg/item"

// Control names a list-level control whose visibility follows the list.
type Control string

const (
	ControlClear  Control = "clear"
	ControlFilter Control = "filter"
)

// Mode is the intent of the input field's submit control.
type Mode int

const (
	// ModeAdd submits a new item.
	ModeAdd Mode = iota
	// ModeUpdate replaces the item in the edit session.
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "add"
}

// Row is one rendered list entry.
type Row struct {
	Item item.Item
	// Hidden is set when the active filter does not match the item.
	Hidden bool
	// Editing marks the single row that is the edit session's target.
	Editing bool
}

// Display is the presentation surface the controller reports to.
type Display interface {
	// Render redraws the whole list.
	Render(rows []Row)
	// SetControl shows or hides a list-level control.
	SetControl(c Control, visible bool)
	// SetInput sets the input field text and its submit intent.
	SetInput(text string, mode Mode)
	// Alert reports a validation error or a storage warning to the user.
	Alert(err error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always answers every prompt with the same value.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(string) bool { return answer })
}

// Discard is a Display that drops everything.
var Discard Display = discard{}

type discard struct{}

func (discard) Render([]Row)             {}
func (discard) SetControl(Control, bool) {}
func (discard) SetInput(string, Mode)    {}
func (discard) Alert(error)              {}
