package keysim

import (
	"errors"

	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/pkg/keys"
)

// Error is the single error type returned by a Simulator. Classify it
// with errors.Is and the Err* sentinels, or with Kind. Key, Char and
// Button identify the input that could not be delivered.
type Error struct {
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return "keysim: " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Kind returns the failure kind of the backend error.
func (e *Error) Kind() Kind {
	return inputerr.KindOf(e.Err)
}

func (e *Error) detail() *inputerr.Error {
	var d *inputerr.Error
	if errors.As(e.Err, &d) {
		return d
	}
	return &inputerr.Error{}
}

// Key returns the unsupported key, for KindUnsupportedKey.
func (e *Error) Key() keys.Key { return e.detail().Key }

// Char returns the unsupported character, for KindUnsupportedChar.
func (e *Error) Char() rune { return e.detail().Char }

// Button returns the unsupported button, for KindUnsupportedButton.
func (e *Error) Button() keys.Button { return e.detail().Button }

// Kind classifies failures across backends.
type Kind = inputerr.Kind

const (
	KindOpen              = inputerr.Open
	KindUnexpected        = inputerr.Unexpected
	KindUnsupportedKey    = inputerr.UnsupportedKey
	KindUnsupportedChar   = inputerr.UnsupportedChar
	KindUnsupportedButton = inputerr.UnsupportedButton
	KindBlocked           = inputerr.Blocked
)

var (
	ErrOpen              = inputerr.ErrOpen
	ErrUnexpected        = inputerr.ErrUnexpected
	ErrUnsupportedKey    = inputerr.ErrUnsupportedKey
	ErrUnsupportedChar   = inputerr.ErrUnsupportedChar
	ErrUnsupportedButton = inputerr.ErrUnsupportedButton
	ErrBlocked           = inputerr.ErrBlocked

	// ErrClosed is the cause reported for calls on a closed Simulator.
	ErrClosed = errors.New("simulator is closed")
)

func wrap(backend string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Backend: backend, Err: err}
}
