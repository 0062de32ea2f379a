package selectlist

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Render returns the frame for the current state: the prompt, then one line
// per item in display order, then the key help when enabled. Every line ends
// with "\n". The output depends only on the state, so two lists with the
// same prompt, items, cursor and marks render identical bytes.
func (s *Select[T]) Render() string {
	st := s.currentStyles()

	var b strings.Builder
	b.WriteString(st.Prompt.Render(s.fit(singleLine(s.prompt), "")))
	b.WriteString("\n")

	for i, item := range s.items {
		prefix := s.glyphs.Blank
		if i == s.cursor {
			prefix = s.glyphs.Cursor
		}

		glyph := s.glyphs.Unmarked
		marked := s.marked.has(item.Identity())
		if marked {
			glyph = s.glyphs.Marked
		}

		content := s.fit(singleLine(item.String()), prefix+glyph)
		if marked {
			glyph = st.Marked.Render(glyph)
		}
		if i == s.cursor {
			content = st.Cursor.Render(content)
		}

		b.WriteString(prefix)
		b.WriteString(glyph)
		b.WriteString(content)
		b.WriteString("\n")
	}

	if s.showHelp {
		h := help.New()
		h.Styles = st.Help
		h.Width = s.width
		b.WriteString(h.ShortHelpView(s.keys.ShortHelp()))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *Select[T]) currentStyles() Styles {
	if s.styles != nil {
		return *s.styles
	}
	r := s.renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return DefaultStyles(r)
}

// fit truncates content so that prefix+content spans at most s.width cells
func (s *Select[T]) fit(content, prefix string) string {
	if s.width <= 0 {
		return content
	}
	avail := s.width - runewidth.StringWidth(prefix)
	if avail < 1 {
		avail = 1
	}
	return runewidth.Truncate(content, avail, ellipsis)
}

// singleLine keeps a rendered item on one row
func singleLine(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
}
