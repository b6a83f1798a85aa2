// Package inputerr defines the failure kinds shared by every input backend.
package inputerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/keysim/pkg/keys"
)

// Kind classifies why an input could not be delivered.
type Kind uint8

const (
	// Open means the connection to the input subsystem could not be established.
	Open Kind = iota + 1
	// Unexpected means an OS or server call that should not fail reported a failure.
	Unexpected
	// UnsupportedKey means the key has no native equivalent in the current environment.
	UnsupportedKey
	// UnsupportedChar means no native encoding exists for the character.
	UnsupportedChar
	// UnsupportedButton means the backend cannot express the mouse button.
	UnsupportedButton
	// Blocked means the OS input queue accepted zero records on a submission.
	Blocked
)

// Sentinels, one per kind, for use with errors.Is.
var (
	ErrOpen              = errors.New("cannot open input connection")
	ErrUnexpected        = errors.New("unexpected input subsystem failure")
	ErrUnsupportedKey    = errors.New("unsupported key")
	ErrUnsupportedChar   = errors.New("unsupported character")
	ErrUnsupportedButton = errors.New("unsupported button")
	ErrBlocked           = errors.New("input submission blocked")
)

func (k Kind) sentinel() error {
	switch k {
	case Open:
		return ErrOpen
	case Unexpected:
		return ErrUnexpected
	case UnsupportedKey:
		return ErrUnsupportedKey
	case UnsupportedChar:
		return ErrUnsupportedChar
	case UnsupportedButton:
		return ErrUnsupportedButton
	case Blocked:
		return ErrBlocked
	default:
		return nil
	}
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is returned by backends. Only the field matching Kind is meaningful
// among Key, Char and Button.
type Error struct {
	Backend string
	Op      string
	Kind    Kind
	Key     keys.Key
	Char    rune
	Button  keys.Button
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Backend != "" {
		b.WriteString(e.Backend)
		b.WriteString(": ")
	}
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	switch e.Kind {
	case UnsupportedKey:
		fmt.Fprintf(&b, " %q", e.Key.String())
	case UnsupportedChar:
		fmt.Fprintf(&b, " %q", e.Char)
	case UnsupportedButton:
		fmt.Fprintf(&b, " %q", e.Button.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Constructors used by the backends.

func OpenFailed(backend string, cause error) *Error {
	return &Error{Backend: backend, Op: "open", Kind: Open, Err: cause}
}

func Failed(backend, op string, cause error) *Error {
	return &Error{Backend: backend, Op: op, Kind: Unexpected, Err: cause}
}

func KeyNotSupported(backend string, k keys.Key) *Error {
	return &Error{Backend: backend, Kind: UnsupportedKey, Key: k}
}

func CharNotSupported(backend string, c rune) *Error {
	return &Error{Backend: backend, Kind: UnsupportedChar, Char: c}
}

func ButtonNotSupported(backend string, b keys.Button) *Error {
	return &Error{Backend: backend, Kind: UnsupportedButton, Button: b}
}

func SubmissionBlocked(backend string, cause error) *Error {
	return &Error{Backend: backend, Op: "submit", Kind: Blocked, Err: cause}
}
