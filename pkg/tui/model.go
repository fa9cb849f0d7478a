// Package tui is the interactive terminal front end for the item list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/liststore"
	"tableflip.dev/itemlist/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeFilter
	modeConfirm
	modeHelp
)

func (m mode) String() string {
	switch m {
	case modeInsert:
		return "INSERT"
	case modeFilter:
		return "FILTER"
	case modeConfirm:
		return "CONFIRM"
	case modeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingRemove
	pendingClear
)

// modal answers the controller's confirmation prompts. Unarmed, it records
// the prompt and declines so the model can ask the user; armed, it returns
// the user's answer once.
type modal struct {
	prompt string
	armed  bool
	answer bool
}

func (c *modal) Confirm(prompt string) bool {
	if c.armed {
		c.armed = false
		return c.answer
	}
	c.prompt = prompt
	return false
}

func (c *modal) reset() {
	c.prompt = ""
	c.armed = false
	c.answer = false
}

// Model contains UI state.
type Model struct {
	ctx    context.Context
	ctrl   *app.Controller
	screen *Screen
	modal  *modal

	keys  keyMap
	help  help.Model
	theme theme.Theme

	input  textinput.Model
	filter textinput.Model

	mode    mode
	cursor  int
	pending pendingKind
	target  item.Item

	status   string
	severity severity

	termWidth  int
	termHeight int
}

// New builds a model over ls and loads the list. Controller options such as
// app.WithConfirmClear pass straight through.
func New(ctx context.Context, ls *liststore.ListStore, opts ...app.Option) *Model {
	screen := NewScreen()
	confirm := &modal{}

	ti := textinput.New()
	ti.Placeholder = "New item"
	ti.CharLimit = 256
	ti.Prompt = ""

	fi := textinput.New()
	fi.Placeholder = "Filter"
	fi.CharLimit = 256
	fi.Prompt = ""

	m := &Model{
		ctx:    ctx,
		ctrl:   app.New(ls, screen, confirm, opts...),
		screen: screen,
		modal:  confirm,
		keys:   newKeyMap(),
		help:   help.New(),
		theme:  theme.Default(),
		input:  ti,
		filter: fi,
		mode:   modeNormal,
		status: "j/k move, enter edit, a add, d remove, / filter, ? help",
	}
	_ = m.ctrl.Start(ctx)
	m.sync()
	return m
}

// Controller exposes the list controller driven by the model.
func (m *Model) Controller() *app.Controller { return m.ctrl }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.Force) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			return m, m.updateHelp(msg)
		case modeConfirm:
			return m, m.updateConfirm(msg)
		case modeInsert:
			return m, m.updateInsert(msg)
		case modeFilter:
			return m, m.updateFilter(msg)
		default:
			return m, m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.screen.VisibleRows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok {
			return nil
		}
		err := m.ctrl.SelectForEdit(it)
		m.sync()
		if err != nil {
			return nil
		}
		m.setStatus("Editing " + it.String())
		return m.enterInsert()
	case key.Matches(msg, m.keys.Add):
		return m.enterInsert()
	case key.Matches(msg, m.keys.Remove):
		it, ok := m.selected()
		if !ok {
			return nil
		}
		m.target = it
		m.run(pendingRemove)
	case key.Matches(msg, m.keys.Clear):
		m.run(pendingClear)
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.filter.SetValue(m.ctrl.Query())
		m.filter.CursorEnd()
		return m.filter.Focus()
	case key.Matches(msg, m.keys.Cancel):
		switch {
		case m.ctrl.Session().Active():
			m.ctrl.CancelEdit()
			m.sync()
			m.setStatus("Edit cancelled")
		case m.ctrl.Query() != "":
			m.ctrl.Filter("")
			m.sync()
			m.setStatus("Filter cleared")
		}
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		m.help.ShowAll = true
	}
	return nil
}

func (m *Model) updateInsert(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		updating := m.screen.Mode() == app.ModeUpdate
		err := m.ctrl.SubmitItem(m.ctx, m.input.Value())
		m.sync()
		if err != nil && !liststore.IsPersistError(err) {
			return nil
		}
		if err == nil {
			if updating {
				m.setStatus("Updated")
			} else {
				m.setStatus("Added")
			}
		}
		if updating {
			m.leaveInsert()
		}
		return nil
	case key.Matches(msg, m.keys.Cancel):
		if m.ctrl.Session().Active() {
			m.ctrl.CancelEdit()
			m.sync()
			m.setStatus("Edit cancelled")
		}
		m.leaveInsert()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateFilter(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.mode = modeNormal
		m.filter.Blur()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.filter.Reset()
		m.filter.Blur()
		m.ctrl.Filter("")
		m.sync()
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.ctrl.Filter(m.filter.Value())
	m.sync()
	return cmd
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.modal.armed = true
		m.modal.answer = true
		m.run(m.pending)
	case key.Matches(msg, m.keys.No):
		if m.pending == pendingClear {
			m.setStatus("Not cleared")
		} else {
			m.setStatus("Not removed")
		}
		m.finishConfirm()
	}
	return nil
}

func (m *Model) updateHelp(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Help, m.keys.Cancel) || msg.String() == "q" {
		m.mode = modeNormal
		m.help.ShowAll = false
	}
	return nil
}

// run performs a confirmable intent. When the controller asks for
// confirmation the model switches to the modal and performs the intent again
// once the user answers.
func (m *Model) run(kind pendingKind) {
	var (
		done bool
		err  error
	)
	switch kind {
	case pendingRemove:
		done, err = m.ctrl.RemoveItem(m.ctx, m.target)
	case pendingClear:
		done, err = m.ctrl.ClearAll(m.ctx)
	default:
		return
	}
	m.sync()

	if !done && m.modal.prompt != "" && m.mode != modeConfirm {
		m.pending = kind
		m.mode = modeConfirm
		return
	}
	if done && err == nil {
		if kind == pendingClear {
			m.setStatus("Cleared")
		} else {
			m.setStatus("Removed " + m.target.String())
		}
	}
	m.finishConfirm()
}

func (m *Model) finishConfirm() {
	m.modal.reset()
	m.pending = pendingNone
	m.target = ""
	m.mode = modeNormal
}

func (m *Model) enterInsert() tea.Cmd {
	m.mode = modeInsert
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) leaveInsert() {
	m.mode = modeNormal
	m.input.Blur()
}

// selected returns the item under the cursor.
func (m *Model) selected() (item.Item, bool) {
	rows := m.screen.VisibleRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return "", false
	}
	return rows[m.cursor].Item, true
}

// sync pulls what the controller wrote to the screen into the widgets.
func (m *Model) sync() {
	if text, ok := m.screen.takeInput(); ok {
		m.input.SetValue(text)
		m.input.CursorEnd()
	}
	if err := m.screen.takeAlert(); err != nil {
		m.status = err.Error()
		m.severity = classify(err)
	}

	n := len(m.screen.VisibleRows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.keys.Clear.SetEnabled(m.screen.ControlVisible(app.ControlClear))
	m.keys.Filter.SetEnabled(m.screen.ControlVisible(app.ControlFilter))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.severity = severityInfo
}

// View renders the list, the input line and the footer.
func (m *Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Items (%d)", len(m.screen.Rows()))
	b.WriteString(m.theme.List.Title.Render(title))
	b.WriteString("\n\n")

	rows := m.screen.VisibleRows()
	if len(rows) == 0 {
		empty := "No items. Press a to add one."
		if len(m.screen.Rows()) > 0 {
			empty = "No items match the filter."
		}
		b.WriteString(m.theme.List.Empty.Render(empty))
		b.WriteString("\n")
	}
	for i, r := range rows {
		b.WriteString(m.renderRow(i, r))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.mode == modeFilter || m.ctrl.Query() != "" {
		b.WriteString(m.theme.Input.Prompt.Render("/ "))
		if m.mode == modeFilter {
			b.WriteString(m.filter.View())
		} else {
			b.WriteString(m.ctrl.Query())
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Input.Prompt.Render(m.screen.Mode().String() + ": "))
	if m.mode == modeInsert {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.theme.Input.Mode.Render(m.input.Value()))
	}
	b.WriteString("\n")

	switch m.mode {
	case modeConfirm:
		body := m.theme.Modal.Title.Render(m.modal.prompt) + "\n\n" +
			m.theme.Modal.Body.Render("y yes · n no")
		b.WriteString("\n")
		b.WriteString(m.theme.Modal.Frame.Render(body))
		b.WriteString("\n")
	case modeHelp:
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	if m.mode != modeHelp {
		b.WriteString("\n")
		b.WriteString(m.theme.Footer.Help.Render(m.help.View(m.keys)))
	}
	return b.String()
}

func (m *Model) renderRow(i int, r app.Row) string {
	text := r.Item.String()
	if m.termWidth > 8 {
		text = truncate.StringWithTail(text, uint(m.termWidth-6), "…")
	}
	if r.Editing {
		text += " ✎"
	}

	var style lipgloss.Style
	switch {
	case i == m.cursor && m.mode != modeInsert:
		style = m.theme.List.Selected
	case r.Editing:
		style = m.theme.List.Editing
	default:
		style = m.theme.List.Row
	}
	return style.Render(text)
}

func (m *Model) renderStatus() string {
	status := fmt.Sprintf("[%s] %s", m.mode, m.status)
	switch m.severity {
	case severityWarning:
		return m.theme.Footer.Warning.Render(status)
	case severityError:
		return m.theme.Footer.Error.Render(status)
	default:
		return m.theme.Footer.Status.Render(status)
	}
}

// Run launches the Bubble Tea UI over ls.
func Run(ctx context.Context, ls *liststore.ListStore, opts ...app.Option) error {
	p := tea.NewProgram(New(ctx, ls, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
