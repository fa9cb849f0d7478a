package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette anchors. Derived shades are blended from these.
const (
	accentHex     = "#ff87d7"
	backgroundHex = "#1c1c1c"
	warningHex    = "#ffd75f"
	errorHex      = "#ff5f5f"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	List   ListTheme
	Input  InputTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// ListTheme styles the item rows and the list heading.
type ListTheme struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Editing  lipgloss.Style
	Empty    lipgloss.Style
}

// InputTheme styles the add/update input line.
type InputTheme struct {
	Prompt lipgloss.Style
	Mode   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Control lipgloss.Style
}

// ModalTheme styles the confirmation modal.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := mustHex(accentHex)
	bg := mustHex(backgroundHex)

	// The editing row gets a muted accent background so the cursor highlight
	// stays distinguishable on top of it.
	editBg := Blend(bg, accent, 0.35)
	frame := Blend(bg, accent, 0.6)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(accentHex)).
		Bold(true)

	return Theme{
		List: ListTheme{
			Title:    title,
			Row:      lipgloss.NewStyle().PaddingLeft(2),
			Selected: lipgloss.NewStyle().PaddingLeft(2).Reverse(true),
			Editing: lipgloss.NewStyle().
				PaddingLeft(2).
				Background(lipgloss.Color(editBg)).
				Italic(true),
			Empty: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241")),
		},
		Input: InputTheme{
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Mode:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(warningHex)),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(errorHex)).Bold(true),
			Control: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(frame)).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

// Blend mixes two colors in Lab space and returns the result as hex.
// t=0 yields from, t=1 yields to.
func Blend(from, to colorful.Color, t float64) string {
	return from.BlendLab(to, t).Clamped().Hex()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
