package selectlist

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Console is the device a Select draws on and reads keys from.
type Console interface {
	io.Writer

	// MakeRaw puts the input into raw mode and returns a function that
	// restores the mode that was active before.
	MakeRaw() (restore func() error, err error)

	// ReadKey blocks until the next key is available.
	ReadKey() (Key, error)
}

// TTY is a Console backed by a terminal file descriptor.
type TTY struct {
	in   *os.File
	out  io.Writer
	keys *KeyReader
}

// NewTTY creates a console reading keys from in and writing frames to out
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{
		in:   in,
		out:  out,
		keys: NewKeyReader(in),
	}
}

// Stdio returns a console on the process's standard input and output
func Stdio() *TTY {
	return NewTTY(os.Stdin, os.Stdout)
}

// IsTerminal reports whether the console input is an interactive terminal
func (t *TTY) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// Write implements io.Writer
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Output returns the writer frames go to. Styling uses it to detect the
// color profile of the real output rather than of the TTY wrapper.
func (t *TTY) Output() io.Writer {
	return t.out
}

// MakeRaw implements Console
func (t *TTY) MakeRaw() (func() error, error) {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}

// ReadKey implements Console
func (t *TTY) ReadKey() (Key, error) {
	return t.keys.ReadKey()
}
