package selectlist

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const escape = 0x1b

// KeyReader decodes keyboard events from a byte stream such as a terminal
// in raw mode. A single read may deliver several keys (fast typing, paste);
// the surplus is queued and returned by later calls.
type KeyReader struct {
	src     io.Reader
	buf     [64]byte
	pending []byte
	err     error
}

// NewKeyReader creates a KeyReader on top of r
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{src: r}
}

// ReadKey blocks until one key is available and returns it.
// Unrecognised sequences are returned as KeyUnknown, never as errors.
// Once the underlying reader fails, queued keys are still drained before
// the error (io.EOF included) is returned.
func (r *KeyReader) ReadKey() (Key, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return Key{}, r.err
		}
		n, err := r.src.Read(r.buf[:])
		r.pending = append(r.pending, r.buf[:n]...)
		r.err = err
	}

	k, size := decodeKey(r.pending)
	r.pending = r.pending[size:]
	return k, nil
}

// decodeKey decodes the first key in b and reports how many bytes it used.
// b must not be empty.
func decodeKey(b []byte) (Key, int) {
	switch c := b[0]; {
	case c == escape:
		return decodeEscape(b)
	case c == '\r' || c == '\n':
		return Key{Code: KeyEnter}, 1
	case c == '\t':
		return Key{Code: KeyTab}, 1
	case c == 0x7f || c == 0x08:
		return Key{Code: KeyBackspace}, 1
	case c == ' ':
		return Key{Code: KeySpace}, 1
	case c >= 0x01 && c <= 0x1a:
		return Key{Code: KeyRune, Rune: rune('a' + c - 1), Mod: ModCtrl}, 1
	case c < 0x20:
		return Key{}, 1
	}

	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return Key{}, 1
	}
	return Key{Code: KeyRune, Rune: r}, size
}

func decodeEscape(b []byte) (Key, int) {
	if len(b) == 1 || b[1] == escape {
		return Key{Code: KeyEscape}, 1
	}

	switch b[1] {
	case '[':
		return decodeCSI(b)
	case 'O':
		// SS3: arrows in application cursor mode
		if len(b) < 3 {
			return Key{}, len(b)
		}
		if code, ok := cursorKey(b[2]); ok {
			return Key{Code: code}, 3
		}
		return Key{}, 3
	}

	k, size := decodeKey(b[1:])
	if k.Code == KeyUnknown {
		return k, size + 1
	}
	k.Mod |= ModAlt
	return k, size + 1
}

// decodeCSI decodes "ESC [ params final". Modified cursor keys arrive as
// "ESC [ 1 ; m X" where m-1 is a bit set of shift(1), alt(2) and ctrl(4).
func decodeCSI(b []byte) (Key, int) {
	i := 2
	for i < len(b) && b[i] >= 0x30 && b[i] <= 0x3f {
		i++
	}
	params := string(b[2:i])
	for i < len(b) && b[i] >= 0x20 && b[i] <= 0x2f {
		i++
	}
	if i >= len(b) || b[i] < 0x40 || b[i] > 0x7e {
		// truncated sequence, drop what we have
		return Key{}, i
	}
	final := b[i]
	size := i + 1

	code, ok := cursorKey(final)
	if !ok {
		return Key{}, size
	}

	k := Key{Code: code}
	if params == "" || params == "1" {
		return k, size
	}
	parts := strings.Split(params, ";")
	if len(parts) != 2 || parts[0] != "1" {
		return Key{}, size
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 2 {
		return Key{}, size
	}
	bits := m - 1
	if bits&1 != 0 {
		k.Mod |= ModShift
	}
	if bits&2 != 0 {
		k.Mod |= ModAlt
	}
	if bits&4 != 0 {
		k.Mod |= ModCtrl
	}
	return k, size
}

func cursorKey(final byte) (KeyCode, bool) {
	switch final {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return KeyUnknown, false
}
