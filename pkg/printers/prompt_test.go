package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPromptAnswers(t *testing.T) {
	color.NoColor = true
	cases := map[string]bool{
		"y\n":     true,
		"YES\n":   true,
		" yes ":   true,
		"n\n":     false,
		"\n":      false,
		"":        false,
		"maybe\n": false,
	}
	for in, want := range cases {
		var out bytes.Buffer
		p := &Prompt{In: strings.NewReader(in), Out: &out}
		assert.Equal(t, want, p.Confirm(`Remove "Milk"?`), "answer %q", in)
		assert.Contains(t, out.String(), `Remove "Milk"? [y/N]`)
	}
}

func TestPromptReadsSuccessiveLines(t *testing.T) {
	var out bytes.Buffer
	p := &Prompt{In: strings.NewReader("y\nn\n"), Out: &out}
	assert.True(t, p.Confirm("first?"))
	assert.False(t, p.Confirm("second?"))
}
