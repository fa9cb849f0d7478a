package tui

import (
	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/liststore"
)

// Screen is the app.Display backing the Bubble Tea model. The controller
// writes into it; the model reads it back when drawing.
type Screen struct {
	rows     []app.Row
	controls map[app.Control]bool

	input      string
	mode       app.Mode
	inputDirty bool

	alert error
}

// NewScreen returns an empty screen with every control hidden.
func NewScreen() *Screen {
	return &Screen{controls: map[app.Control]bool{}}
}

func (s *Screen) Render(rows []app.Row) { s.rows = rows }

func (s *Screen) SetControl(c app.Control, visible bool) { s.controls[c] = visible }

func (s *Screen) SetInput(text string, mode app.Mode) {
	s.input = text
	s.mode = mode
	s.inputDirty = true
}

func (s *Screen) Alert(err error) { s.alert = err }

// Rows returns the last rendered rows, hidden ones included.
func (s *Screen) Rows() []app.Row { return s.rows }

// VisibleRows returns the rows the filter lets through.
func (s *Screen) VisibleRows() []app.Row {
	out := make([]app.Row, 0, len(s.rows))
	for _, r := range s.rows {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}

// ControlVisible reports whether c is currently shown.
func (s *Screen) ControlVisible(c app.Control) bool { return s.controls[c] }

// Mode returns the submit intent of the input field.
func (s *Screen) Mode() app.Mode { return s.mode }

// takeInput returns the input text the controller last set, once.
func (s *Screen) takeInput() (string, bool) {
	if !s.inputDirty {
		return "", false
	}
	s.inputDirty = false
	return s.input, true
}

// takeAlert returns and clears the pending alert.
func (s *Screen) takeAlert() error {
	err := s.alert
	s.alert = nil
	return err
}

// severity classifies an alert for styling.
type severity int

const (
	severityInfo severity = iota
	severityWarning
	severityError
)

func classify(err error) severity {
	switch {
	case err == nil:
		return severityInfo
	case liststore.IsPersistError(err):
		return severityWarning
	default:
		return severityError
	}
}
