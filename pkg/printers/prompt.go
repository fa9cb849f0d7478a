package printers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Prompt asks yes/no questions on a terminal. Anything other than "y" or
// "yes" (including EOF) is a no.
type Prompt struct {
	In  io.Reader
	Out io.Writer

	r *bufio.Reader
}

// Confirm prints prompt and reads one line of answer.
func (p *Prompt) Confirm(prompt string) bool {
	if p.r == nil {
		p.r = bufio.NewReader(p.In)
	}
	q := color.New(color.Bold)
	_, _ = q.Fprint(p.Out, prompt)
	_, _ = fmt.Fprint(p.Out, " [y/N] ")

	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		_, _ = fmt.Fprintln(p.Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
