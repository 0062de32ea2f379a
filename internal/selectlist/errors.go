package selectlist

import (
	"errors"
	"fmt"
)

// ErrorType represents the stage of a session that failed
type ErrorType int

const (
	// ErrTypeRawMode indicates the terminal could not be switched to raw mode
	ErrTypeRawMode ErrorType = iota
	// ErrTypeRead indicates reading a key failed (including end of input)
	ErrTypeRead
	// ErrTypeRestore indicates the previous terminal mode could not be restored
	ErrTypeRestore
	// ErrTypeRender indicates writing a frame failed
	ErrTypeRender
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeRawMode:
		return "Raw Mode Error"
	case ErrTypeRead:
		return "Read Error"
	case ErrTypeRestore:
		return "Restore Error"
	case ErrTypeRender:
		return "Render Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// TerminalError is returned by Run when the terminal session cannot go on.
type TerminalError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *TerminalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *TerminalError) Unwrap() error {
	return e.Err
}

func newTerminalError(typ ErrorType, message string, err error) *TerminalError {
	return &TerminalError{Type: typ, Message: message, Err: err}
}

func isType(err error, typ ErrorType) bool {
	var termErr *TerminalError
	if errors.As(err, &termErr) {
		return termErr.Type == typ
	}
	return false
}

// IsRawModeError checks if err was caused by a failed switch to raw mode
func IsRawModeError(err error) bool {
	return isType(err, ErrTypeRawMode)
}

// IsReadError checks if err was caused by a failed key read
func IsReadError(err error) bool {
	return isType(err, ErrTypeRead)
}

// IsRestoreError checks if err was caused by a failed terminal restore
func IsRestoreError(err error) bool {
	return isType(err, ErrTypeRestore)
}

// IsRenderError checks if err was caused by a failed frame write
func IsRenderError(err error) bool {
	return isType(err, ErrTypeRender)
}
