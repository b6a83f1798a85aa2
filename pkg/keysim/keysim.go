// Package keysim synthesizes keyboard and mouse input at the operating
// system level.
//
// A Simulator owns exactly one platform backend, chosen when it is
// created. It is not safe for concurrent use: confine it to one goroutine
// or serialize calls. Every call blocks until the platform accepted the
// events and cannot be cancelled once issued.
package keysim

import (
	"errors"
	"iter"

	"github.com/bnema/keysim/internal/config"
	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/pkg/keys"
)

// Backend is implemented by each platform variant.
type Backend interface {
	Name() string
	// Supports reports whether k resolves to a native key, without
	// sending anything.
	Supports(k keys.Key) bool
	PressKey(k keys.Key) error
	ReleaseKey(k keys.Key) error
	SendKey(k keys.Key) error
	PressButton(b keys.Button) error
	ReleaseButton(b keys.Button) error
	SendButton(b keys.Button) error
	SendChar(c rune) error
	SendChars(chars iter.Seq[rune]) error
	SendString(s string) error
	Close() error
}

// Simulator forwards every action to its backend.
type Simulator struct {
	backend Backend
	closed  bool
}

// New selects and initializes the backend for this platform using the
// loaded configuration.
func New() (*Simulator, error) {
	return NewWithConfig(config.Get())
}

// NewWithConfig is New with an explicit configuration.
func NewWithConfig(cfg *config.Config) (*Simulator, error) {
	sel, err := selectBackend(cfg, lookupSession())
	if err != nil {
		return nil, err
	}
	b, err := openBackend(sel, cfg)
	if err != nil {
		return nil, wrap(sel, err)
	}
	return NewWithBackend(b), nil
}

// NewWithBackend wraps an already initialized backend.
func NewWithBackend(b Backend) *Simulator {
	return &Simulator{backend: b}
}

// Backend returns the name of the active backend.
func (s *Simulator) Backend() string {
	return s.backend.Name()
}

// Close releases the backend. Later calls on s, including Close, fail.
func (s *Simulator) Close() error {
	if s.closed {
		return s.errClosed("close")
	}
	s.closed = true
	return s.wrap(s.backend.Close())
}

func (s *Simulator) PressKey(k keys.Key) error {
	if s.closed {
		return s.errClosed("press key")
	}
	return s.wrap(s.backend.PressKey(k))
}

func (s *Simulator) ReleaseKey(k keys.Key) error {
	if s.closed {
		return s.errClosed("release key")
	}
	return s.wrap(s.backend.ReleaseKey(k))
}

// SendKey presses and releases k.
func (s *Simulator) SendKey(k keys.Key) error {
	if s.closed {
		return s.errClosed("send key")
	}
	return s.wrap(s.backend.SendKey(k))
}

func (s *Simulator) PressButton(b keys.Button) error {
	if s.closed {
		return s.errClosed("press button")
	}
	return s.wrap(s.backend.PressButton(b))
}

func (s *Simulator) ReleaseButton(b keys.Button) error {
	if s.closed {
		return s.errClosed("release button")
	}
	return s.wrap(s.backend.ReleaseButton(b))
}

// SendButton clicks b.
func (s *Simulator) SendButton(b keys.Button) error {
	if s.closed {
		return s.errClosed("send button")
	}
	return s.wrap(s.backend.SendButton(b))
}

// SendChar types one character.
func (s *Simulator) SendChar(c rune) error {
	if s.closed {
		return s.errClosed("send char")
	}
	return s.wrap(s.backend.SendChar(c))
}

// SendChars types chars in order. The first character that cannot be
// typed stops the sequence and is identified by the returned error;
// characters before it stay typed.
func (s *Simulator) SendChars(chars iter.Seq[rune]) error {
	if s.closed {
		return s.errClosed("send chars")
	}
	return s.wrap(s.backend.SendChars(chars))
}

// SendString types str, one character per code point.
func (s *Simulator) SendString(str string) error {
	if s.closed {
		return s.errClosed("send string")
	}
	return s.wrap(s.backend.SendString(str))
}

// SendChord holds mods while sending k. Modifiers are pressed in a fixed
// order and released in reverse. Every key is resolved first, so a chord
// with an unsupported key sends nothing. On a later failure, modifiers
// already pressed are released before the error is returned.
func (s *Simulator) SendChord(mods keys.Modifiers, k keys.Key) error {
	if s.closed {
		return s.errClosed("send chord")
	}
	for _, key := range append(mods.Keys(), k) {
		if !s.backend.Supports(key) {
			return s.wrap(inputerr.KeyNotSupported(s.backend.Name(), key))
		}
	}
	held := mods.Keys()
	for i, m := range held {
		if err := s.backend.PressKey(m); err != nil {
			return s.wrap(errors.Join(err, s.releaseAll(held[:i])))
		}
	}
	if err := s.backend.SendKey(k); err != nil {
		return s.wrap(errors.Join(err, s.releaseAll(held)))
	}
	return s.wrap(s.releaseAll(held))
}

// releaseAll releases held in reverse order, attempting every key.
func (s *Simulator) releaseAll(held []keys.Key) error {
	var errs []error
	for i := len(held) - 1; i >= 0; i-- {
		if err := s.backend.ReleaseKey(held[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Simulator) wrap(err error) error {
	return wrap(s.backend.Name(), err)
}

func (s *Simulator) errClosed(op string) error {
	return s.wrap(inputerr.Failed(s.backend.Name(), op, ErrClosed))
}

// HardwareLevel reports whether events reach the system as if they came
// from a device, rather than being addressed to a single window. Only the
// X11 backend without XTEST delivers window-targeted events.
func (s *Simulator) HardwareLevel() bool {
	if x, ok := s.backend.(interface{ UsesXTest() bool }); ok {
		return x.UsesXTest()
	}
	return true
}
