package selectlist

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Glyphs are the prefixes drawn in front of every row.
type Glyphs struct {
	Cursor   string // row under the cursor
	Blank    string // every other row, same width as Cursor
	Marked   string
	Unmarked string
}

// DefaultGlyphs returns "> " for the cursor row and "[x] "/"[ ] " marks
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Cursor:   "> ",
		Blank:    "  ",
		Marked:   "[x] ",
		Unmarked: "[ ] ",
	}
}

var (
	cursorColor = lipgloss.Color("#43BF6D") // Green
	markColor   = lipgloss.Color("#7D56F4") // Purple
	mutedColor  = lipgloss.Color("#626262") // Gray
)

// Styles color the parts of a frame.
type Styles struct {
	Prompt lipgloss.Style
	Cursor lipgloss.Style // content of the row under the cursor
	Marked lipgloss.Style // mark glyph of marked rows
	Help   help.Styles
}

// DefaultStyles builds the widget styles on r. Rendering through a renderer
// bound to a non-terminal writer yields plain text.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	muted := r.NewStyle().Foreground(mutedColor)
	return Styles{
		Prompt: r.NewStyle().Bold(true),
		Cursor: r.NewStyle().Foreground(cursorColor),
		Marked: r.NewStyle().Foreground(markColor),
		Help: help.Styles{
			Ellipsis:       muted,
			ShortKey:       r.NewStyle(),
			ShortDesc:      muted,
			ShortSeparator: muted,
			FullKey:        r.NewStyle(),
			FullDesc:       muted,
			FullSeparator:  muted,
		},
	}
}
