package selectlist

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/tickbox/internal/logging"
)

// Select is an interactive multi-select list over items of type T.
//
// A Select is configured with the builder methods, run once with Run and
// then queried with GetMarked. It is not safe for concurrent use.
type Select[T Item] struct {
	prompt string
	items  []T
	cursor int
	marked *markSet[T]

	console  Console
	renderer *lipgloss.Renderer
	keys     KeyMap
	glyphs   Glyphs
	styles   *Styles
	width    int
	showHelp bool

	// lines drawn by the previous frame, erased before the next one
	drawn int
}

// New returns an empty Select: no prompt, no items, cursor on the first row
// and nothing marked.
func New[T Item]() *Select[T] {
	return &Select[T]{
		marked: newMarkSet[T](),
		keys:   DefaultKeyMap(),
		glyphs: DefaultGlyphs(),
	}
}

// WithPrompt sets the header line drawn above the items
func (s *Select[T]) WithPrompt(prompt string) *Select[T] {
	s.prompt = prompt
	return s
}

// Items appends items to the list. Earlier items are kept.
func (s *Select[T]) Items(items ...T) *Select[T] {
	s.items = append(s.items, items...)
	return s
}

// Default sets the initial cursor row. The index is not checked here; an
// out of range value is clamped when the session starts.
func (s *Select[T]) Default(index int) *Select[T] {
	s.cursor = index
	return s
}

// SetMarked marks the given items, matched by Identity
func (s *Select[T]) SetMarked(items ...T) *Select[T] {
	for _, item := range items {
		s.marked.add(item)
	}
	return s
}

// GetMarked returns a copy of the marked items in the order they were marked
func (s *Select[T]) GetMarked() []T {
	return s.marked.items()
}

// IsMarked reports whether an item with the given identity is marked
func (s *Select[T]) IsMarked(id int64) bool {
	return s.marked.has(id)
}

// Cursor returns the current cursor row
func (s *Select[T]) Cursor() int {
	return s.cursor
}

// WithConsole sets the device to draw on and read from. By default the
// process's standard input and output are used.
func (s *Select[T]) WithConsole(c Console) *Select[T] {
	s.console = c
	var out io.Writer = c
	if o, ok := c.(interface{ Output() io.Writer }); ok {
		out = o.Output()
	}
	s.renderer = lipgloss.NewRenderer(out)
	return s
}

// WithKeyMap replaces the key bindings
func (s *Select[T]) WithKeyMap(k KeyMap) *Select[T] {
	s.keys = k
	return s
}

// WithGlyphs replaces the row prefixes
func (s *Select[T]) WithGlyphs(g Glyphs) *Select[T] {
	s.glyphs = g
	return s
}

// WithStyles replaces the frame styles
func (s *Select[T]) WithStyles(st Styles) *Select[T] {
	s.styles = &st
	return s
}

// WithWidth truncates rows wider than width display cells. Zero disables
// truncation.
func (s *Select[T]) WithWidth(width int) *Select[T] {
	s.width = width
	return s
}

// WithHelp toggles the key help line below the items
func (s *Select[T]) WithHelp(show bool) *Select[T] {
	s.showHelp = show
	return s
}

// Run draws the list and processes keys until the quit binding is pressed.
// It blocks the calling goroutine for the whole session and returns the
// same Select with its marks updated. Terminal failures end the session
// with a *TerminalError; the marks reflect every toggle made before it.
func (s *Select[T]) Run() (*Select[T], error) {
	if s.console == nil {
		s.WithConsole(Stdio())
	}
	s.clampCursor()
	s.drawn = 0

	logging.Debug("Select session started",
		zap.Int("items", len(s.items)),
		zap.Int("marked", len(s.marked.order)),
		zap.Int("cursor", s.cursor),
	)

	if err := s.paint(); err != nil {
		return s, err
	}

	for {
		k, err := s.readKey()
		if err != nil {
			logging.Warn("Select session aborted", zap.Error(err))
			return s, err
		}
		logging.LogKeyEvent(k.String(), s.cursor)

		if s.update(k) {
			logging.Debug("Select session finished",
				zap.Int("marked", len(s.marked.order)),
				zap.Int("cursor", s.cursor),
			)
			return s, nil
		}

		if err := s.paint(); err != nil {
			return s, err
		}
	}
}

// readKey holds raw mode only for the duration of one blocking read.
func (s *Select[T]) readKey() (k Key, err error) {
	restore, err := s.console.MakeRaw()
	if err != nil {
		return Key{}, newTerminalError(ErrTypeRawMode, "failed to enable raw mode", err)
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			err = errors.Join(err, newTerminalError(ErrTypeRestore, "failed to restore terminal mode", rerr))
		}
	}()

	k, err = s.console.ReadKey()
	if err != nil {
		return Key{}, newTerminalError(ErrTypeRead, "failed to read key", err)
	}
	return k, nil
}

// update applies one key to the state and reports whether the session ends
func (s *Select[T]) update(k Key) bool {
	switch {
	case key.Matches(k, s.keys.Quit):
		return true

	case key.Matches(k, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}

	case key.Matches(k, s.keys.Down):
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}

	case key.Matches(k, s.keys.Toggle):
		if s.cursor >= 0 && s.cursor < len(s.items) {
			item := s.items[s.cursor]
			s.marked.toggle(item)
			logging.LogToggle(item.Identity(), s.marked.has(item.Identity()))
		}
	}
	return false
}

func (s *Select[T]) clampCursor() {
	switch {
	case s.cursor < 0 || len(s.items) == 0:
		s.cursor = 0
	case s.cursor >= len(s.items):
		s.cursor = len(s.items) - 1
	}
}

// paint erases the previous frame and writes the current one
func (s *Select[T]) paint() error {
	body := s.Render()
	frame := body
	if s.drawn > 0 {
		// cursor up to the first line of the last frame, erase below
		frame = fmt.Sprintf("\x1b[%dA\r\x1b[J", s.drawn) + body
	}
	if _, err := io.WriteString(s.console, frame); err != nil {
		return newTerminalError(ErrTypeRender, "failed to draw list", err)
	}
	s.drawn = strings.Count(body, "\n")
	return nil
}
