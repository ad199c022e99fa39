package console

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Style renders text with a lipgloss style, or returns it untouched when
// the style is plain. Plain output never passes through lipgloss so tabs
// and spacing in values are kept byte for byte.
type Style struct {
	style lipgloss.Style
	plain bool
}

// Render applies the style to text.
func (s Style) Render(text string) string {
	if s.plain || text == "" {
		return text
	}
	return s.style.Render(text)
}

// Styles are the styles used for report output.
type Styles struct {
	Header   Style
	Key      Style
	File     Style
	Missing  Style
	Deleted  Style
	Inserted Style
}

func newStyle(s lipgloss.Style) Style {
	return Style{style: s.TabWidth(lipgloss.NoTabConversion)}
}

// PlainStyles returns styles that add no escape codes.
func PlainStyles() Styles {
	plain := Style{plain: true}
	return Styles{
		Header:   plain,
		Key:      plain,
		File:     plain,
		Missing:  plain,
		Deleted:  plain,
		Inserted: plain,
	}
}

// ColorStyles returns the styled palette. Only the 16 base ANSI colors are
// used so every non-ASCII profile renders them as-is.
func ColorStyles() Styles {
	return Styles{
		Header:   newStyle(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))),
		Key:      newStyle(lipgloss.NewStyle().Bold(true)),
		File:     newStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6"))),
		Missing:  newStyle(lipgloss.NewStyle().Faint(true)),
		Deleted:  newStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)),
		Inserted: newStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Underline(true)),
	}
}

// Strip removes ANSI escape sequences from text.
func Strip(text string) string {
	return ansi.Strip(text)
}

// Width returns the printable width of text, ignoring escape sequences.
func Width(text string) int {
	return lipgloss.Width(text)
}
