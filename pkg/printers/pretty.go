package printers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/itemlist/pkg/app"
	"tableflip.dev/itemlist/pkg/liststore"
)

// PrettyPrint is the command-line display. It collects what the controller
// reports and prints the final state once, on Flush. Storage warnings are
// printed as they arrive.
type PrettyPrint struct {
	Out   io.Writer
	Err   io.Writer
	Title string
	// ShowAll prints rows hidden by the filter in a faint style instead of
	// skipping them.
	ShowAll bool
	// ReportErrors prints validation errors as well as storage warnings.
	// Commands leave it off and return the error instead.
	ReportErrors bool

	rows     []app.Row
	controls map[app.Control]bool
	input    string
	mode     app.Mode
}

// New returns a PrettyPrint writing to out and err.
func New(out, err io.Writer) *PrettyPrint {
	return &PrettyPrint{Out: out, Err: err, Title: "Items", controls: make(map[app.Control]bool)}
}

func (pp *PrettyPrint) Render(rows []app.Row) { pp.rows = rows }

func (pp *PrettyPrint) SetControl(c app.Control, visible bool) {
	if pp.controls == nil {
		pp.controls = make(map[app.Control]bool)
	}
	pp.controls[c] = visible
}

func (pp *PrettyPrint) SetInput(text string, mode app.Mode) {
	pp.input = text
	pp.mode = mode
}

func (pp *PrettyPrint) Alert(err error) {
	if err == nil {
		return
	}
	warning := liststore.IsPersistError(err)
	if !warning && !pp.ReportErrors {
		return
	}
	switch {
	case warning:
		_, _ = color.New(color.FgYellow, color.Bold).Fprint(pp.Err, "warning: ")
	case app.IsValidation(err):
		_, _ = color.New(color.FgRed, color.Bold).Fprint(pp.Err, "error: ")
	case errors.Is(err, app.ErrUnknownItem):
		_, _ = color.New(color.FgRed).Fprint(pp.Err, "error: ")
	default:
		_, _ = fmt.Fprint(pp.Err, "error: ")
	}
	_, _ = fmt.Fprintln(pp.Err, err.Error())
}

// Rows returns the last rendered rows.
func (pp *PrettyPrint) Rows() []app.Row { return pp.rows }

// ControlVisible reports the last visibility set for c.
func (pp *PrettyPrint) ControlVisible(c app.Control) bool { return pp.controls[c] }

// Flush prints the title, the visible items and the available controls.
func (pp *PrettyPrint) Flush() {
	visible := 0
	for _, r := range pp.rows {
		if !r.Hidden {
			visible++
		}
	}
	pp.TitleWithCount(pp.Title, visible)

	if visible == 0 && !pp.ShowAll {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Out, " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	faint := color.New(color.Faint)
	edit := color.New(color.FgHiYellow, color.Bold)
	n := 0
	for _, r := range pp.rows {
		if r.Hidden && !pp.ShowAll {
			continue
		}
		n++
		idx := faint.Sprint(strconv.Itoa(n) + ".")
		text := r.Item.String()
		marker := ""
		switch {
		case r.Editing:
			text = edit.Sprint(text)
			marker = edit.Sprint("(editing)")
		case r.Hidden:
			text = faint.Sprint(text)
		}
		tbl.AddRow(idx, text, marker)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
	pp.footer()
}

// TitleWithCount prints title followed by the number of items.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " item")
	default:
		_, _ = c.Fprintln(pp.Out, " items")
	}
}

func (pp *PrettyPrint) footer() {
	var hints []string
	if pp.controls[app.ControlFilter] {
		hints = append(hints, "ls <query> to filter")
	}
	if pp.controls[app.ControlClear] {
		hints = append(hints, "clear to remove all")
	}
	if len(hints) == 0 {
		return
	}
	f := color.New(color.Faint)
	for _, h := range hints {
		_, _ = f.Fprintf(pp.Out, "  %s\n", h)
	}
	_, _ = fmt.Fprintln(pp.Out)
}
