// Package app sequences user intents against the list store and reports the
// resulting state to a display. UIs and CLIs share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/itemlist/pkg/item"
	"tableflip.dev/itemlist/pkg/liststore"
)

// Controller owns the edit session and keeps the input field, the displayed
// list and the persisted list consistent. It is not safe for concurrent use;
// intents are expected to arrive one at a time from a single event loop.
type Controller struct {
	store   *liststore.ListStore
	display Display
	confirm Confirmer
	logger  *slog.Logger

	confirmClear bool

	session EditSession
	query   string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConfirmClear makes ClearAll ask for confirmation first.
func WithConfirmClear(confirm bool) Option {
	return func(c *Controller) { c.confirmClear = confirm }
}

// New wires a controller. A nil display or confirmer falls back to Discard and
// to always confirming.
func New(s *liststore.ListStore, d Display, confirm Confirmer, opts ...Option) *Controller {
	if d == nil {
		d = Discard
	}
	if confirm == nil {
		confirm = Always(true)
	}
	c := &Controller{
		store:   s,
		display: d,
		confirm: confirm,
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start loads the persisted list and draws the initial state. An unreadable
// store is reported as a warning and the controller starts empty.
func (c *Controller) Start(ctx context.Context) error {
	if c.store == nil {
		return errors.New("app: no store configured")
	}
	_, err := c.store.Load(ctx)
	c.session = EditSession{}
	c.display.SetInput("", ModeAdd)
	c.refresh()
	if err != nil {
		c.warn(err)
		return err
	}
	return nil
}

// Items returns the current list in insertion order.
func (c *Controller) Items() []item.Item {
	return c.store.All()
}

// Visible returns the items matching the active filter.
func (c *Controller) Visible() []item.Item {
	out := make([]item.Item, 0, c.store.Len())
	for _, it := range c.store.All() {
		if it.Matches(c.query) {
			out = append(out, it)
		}
	}
	return out
}

// Session returns the current edit session.
func (c *Controller) Session() EditSession { return c.session }

// Query returns the active filter.
func (c *Controller) Query() string { return c.query }

// SubmitItem adds text, or, while an item is being edited, replaces that item
// with text. Blank text and (when adding) duplicates are rejected without
// touching the list or the input field.
//
// An update removes the old item and appends the new one, so the edited item
// moves to the end of the list. The new text is validated before the old
// item is removed; a rejected update never loses the original.
func (c *Controller) SubmitItem(ctx context.Context, text string) error {
	it, err := item.Parse(text)
	if err != nil {
		return c.reject(ErrEmptyInput)
	}

	var perr error
	if target, ok := c.session.Target(); ok {
		perr = errors.Join(
			c.store.Remove(ctx, target),
			c.store.Add(ctx, it),
		)
		c.logger.Debug("item updated", "from", target, "to", it)
	} else {
		if c.store.Exists(it.String()) {
			return c.reject(fmt.Errorf("%w: %q", ErrDuplicateItem, it))
		}
		perr = c.store.Add(ctx, it)
		c.logger.Debug("item added", "item", it)
	}

	c.session = EditSession{}
	c.display.SetInput("", ModeAdd)
	c.refresh()
	if perr != nil {
		c.warn(perr)
		return perr
	}
	return nil
}

// SelectForEdit starts editing it, replacing any previous session. Selecting
// the item already being edited changes nothing.
func (c *Controller) SelectForEdit(it item.Item) error {
	if c.session.Is(it) {
		return nil
	}
	if !c.store.Contains(it) {
		err := fmt.Errorf("%w: %q", ErrUnknownItem, it)
		c.display.Alert(err)
		return err
	}
	c.session = editing(it)
	c.display.SetInput(it.String(), ModeUpdate)
	c.render()
	c.logger.Debug("editing item", "item", it)
	return nil
}

// CancelEdit ends the edit session without changing the list.
func (c *Controller) CancelEdit() {
	if !c.session.Active() {
		return
	}
	c.session = EditSession{}
	c.display.SetInput("", ModeAdd)
	c.render()
}

// RemoveItem asks for confirmation and then removes it. It reports whether
// the removal went ahead. Removing an item that is not in the list is a
// no-op.
func (c *Controller) RemoveItem(ctx context.Context, it item.Item) (bool, error) {
	if !c.confirm.Confirm(fmt.Sprintf("Remove %q?", it)) {
		c.logger.Debug("remove declined", "item", it)
		return false, nil
	}
	err := c.store.Remove(ctx, it)
	if c.session.Is(it) && !c.store.Contains(it) {
		c.session = EditSession{}
		c.display.SetInput("", ModeAdd)
	}
	c.logger.Debug("item removed", "item", it)
	c.refresh()
	if err != nil {
		c.warn(err)
		return true, err
	}
	return true, nil
}

// ClearAll empties the list. When the controller was built with
// WithConfirmClear it asks first and reports whether the list was cleared.
func (c *Controller) ClearAll(ctx context.Context) (bool, error) {
	if c.confirmClear && !c.confirm.Confirm("Clear all items?") {
		return false, nil
	}
	err := c.store.Clear(ctx)
	if c.session.Active() {
		c.session = EditSession{}
		c.display.SetInput("", ModeAdd)
	}
	c.logger.Debug("items cleared")
	c.refresh()
	if err != nil {
		c.warn(err)
		return true, err
	}
	return true, nil
}

// Filter hides every item that does not contain query, ignoring case. The
// list itself is untouched; the empty query shows everything.
func (c *Controller) Filter(query string) {
	c.query = query
	c.render()
}

// CheckUI shows the clear and filter controls when the list has items and
// hides them when it is empty.
func (c *Controller) CheckUI() {
	visible := c.store.Len() > 0
	c.display.SetControl(ControlClear, visible)
	c.display.SetControl(ControlFilter, visible)
}

// Rows computes the rendered form of the list.
func (c *Controller) Rows() []Row {
	all := c.store.All()
	rows := make([]Row, len(all))
	marked := false
	for i, it := range all {
		rows[i] = Row{Item: it, Hidden: !it.Matches(c.query)}
		if !marked && c.session.Is(it) {
			rows[i].Editing = true
			marked = true
		}
	}
	return rows
}

func (c *Controller) render() {
	c.display.Render(c.Rows())
}

func (c *Controller) refresh() {
	c.render()
	c.CheckUI()
}

func (c *Controller) reject(err error) error {
	c.logger.Debug("input rejected", "error", err)
	c.display.Alert(err)
	return err
}

func (c *Controller) warn(err error) {
	c.logger.Warn("storage unavailable, keeping in-memory list", "error", err)
	c.display.Alert(err)
}
