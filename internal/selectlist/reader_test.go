package selectlist

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyReader_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "up arrow", input: "\x1b[A", want: "up"},
		{name: "down arrow", input: "\x1b[B", want: "down"},
		{name: "right arrow", input: "\x1b[C", want: "right"},
		{name: "left arrow", input: "\x1b[D", want: "left"},
		{name: "application mode up", input: "\x1bOA", want: "up"},
		{name: "application mode down", input: "\x1bOB", want: "down"},
		{name: "shift up", input: "\x1b[1;2A", want: "shift+up"},
		{name: "ctrl down", input: "\x1b[1;5B", want: "ctrl+down"},
		{name: "ctrl alt shift up", input: "\x1b[1;8A", want: "ctrl+alt+shift+up"},
		{name: "home", input: "\x1b[H", want: "home"},
		{name: "space", input: " ", want: " "},
		{name: "carriage return", input: "\r", want: "enter"},
		{name: "line feed", input: "\n", want: "enter"},
		{name: "tab", input: "\t", want: "tab"},
		{name: "delete", input: "\x7f", want: "backspace"},
		{name: "ctrl+c", input: "\x03", want: "ctrl+c"},
		{name: "ctrl+a", input: "\x01", want: "ctrl+a"},
		{name: "lone escape", input: "\x1b", want: "esc"},
		{name: "alt+x", input: "\x1bx", want: "alt+x"},
		{name: "letter", input: "q", want: "q"},
		{name: "multibyte rune", input: "é", want: "é"},
		{name: "page up is unknown", input: "\x1b[5~", want: "unknown"},
		{name: "invalid utf8", input: "\xff", want: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewKeyReader(strings.NewReader(tt.input))
			k, err := r.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, k.String())

			_, err = r.ReadKey()
			assert.ErrorIs(t, err, io.EOF, "input should be fully consumed")
		})
	}
}

func TestKeyReader_SplitsChunk(t *testing.T) {
	r := NewKeyReader(strings.NewReader("\x1b[Bx \x1b[1;2A\x03"))

	var got []string
	for {
		k, err := r.ReadKey()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
		got = append(got, k.String())
	}
	assert.Equal(t, []string{"down", "x", " ", "shift+up", "ctrl+c"}, got)
}

func TestKeyReader_TruncatedSequence(t *testing.T) {
	r := NewKeyReader(strings.NewReader("\x1b[1;"))
	k, err := r.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyUnknown, k.Code)

	_, err = r.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, f.err
}

func TestKeyReader_DrainsBeforeError(t *testing.T) {
	boom := errors.New("device gone")
	r := NewKeyReader(&failingReader{data: []byte("\x1b[A"), err: boom})

	k, err := r.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, "up", k.String())

	_, err = r.ReadKey()
	assert.ErrorIs(t, err, boom)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "unknown", Key{}.String())
	assert.Equal(t, "alt+enter", Key{Code: KeyEnter, Mod: ModAlt}.String())
	assert.Equal(t, "ctrl+shift+left", Key{Code: KeyLeft, Mod: ModCtrl | ModShift}.String())
}
