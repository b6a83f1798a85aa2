// Package x11 simulates input on an X11 display, through the XTEST
// extension when the server offers it and through synthetic events sent
// to the focused window otherwise.
package x11

import (
	"errors"
	"iter"

	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/internal/logger"
	"github.com/bnema/keysim/pkg/keys"
	"github.com/jezek/xgb/xproto"
)

// connection is the part of Display the simulator drives.
type connection interface {
	QueryExtension() bool
	Keycode(sym xproto.Keysym) (xproto.Keycode, bool)
	FocusedWindow() (xproto.Window, error)
	FakeKey(code xproto.Keycode, press bool) error
	FakeButton(button xproto.Button, press bool) error
	SendKeyEvent(window xproto.Window, code xproto.Keycode, state uint16, press bool) error
	SendButtonEvent(window xproto.Window, button xproto.Button, press bool) error
	Flush() error
	Close() error
}

var _ connection = (*Display)(nil)

// Options tunes how the simulator connects.
type Options struct {
	// Display names the X display; empty means $DISPLAY.
	Display string
	// DisableXTest forces window-targeted delivery even when the server
	// supports XTEST.
	DisableXTest bool
}

// Simulator synthesizes input on one X display. The delivery path is
// chosen once, at construction. Like Display, it is not safe for
// concurrent use.
type Simulator struct {
	conn   connection
	xtest  bool
	closed bool
}

// New opens the display and negotiates XTEST.
func New(opts Options) (*Simulator, error) {
	d, err := Open(opts.Display)
	if err != nil {
		return nil, err
	}
	useXTest := d.QueryExtension() && !opts.DisableXTest
	logger.Debug("x11 simulator ready", "xtest", useXTest)
	return newSimulator(d, useXTest), nil
}

func newSimulator(c connection, useXTest bool) *Simulator {
	return &Simulator{conn: c, xtest: useXTest}
}

// Name identifies the backend.
func (s *Simulator) Name() string { return backendName }

// UsesXTest reports whether events are injected through XTEST.
func (s *Simulator) UsesXTest() bool { return s.xtest }

// Close releases the display connection. Later actions fail with an
// unexpected error.
func (s *Simulator) Close() error {
	s.closed = true
	return s.conn.Close()
}

// Supports reports whether the active keyboard mapping has a key for k.
func (s *Simulator) Supports(k keys.Key) bool {
	_, err := s.resolveKey(k)
	return err == nil
}

func (s *Simulator) PressKey(k keys.Key) error {
	return s.keyAction(k, true)
}

func (s *Simulator) ReleaseKey(k keys.Key) error {
	return s.keyAction(k, false)
}

// SendKey presses then releases k, with a single flush.
func (s *Simulator) SendKey(k keys.Key) error {
	code, err := s.resolveKey(k)
	if err != nil {
		return err
	}
	if err := s.emitKey(code, 0, true, true); err != nil {
		return err
	}
	return s.conn.Flush()
}

func (s *Simulator) keyAction(k keys.Key, press bool) error {
	code, err := s.resolveKey(k)
	if err != nil {
		return err
	}
	if err := s.emitKey(code, 0, press, !press); err != nil {
		return err
	}
	return s.conn.Flush()
}

func (s *Simulator) resolveKey(k keys.Key) (xproto.Keycode, error) {
	if s.closed {
		return 0, inputerr.Failed(backendName, "resolve key", errClosed)
	}
	for _, sym := range keySymbols(k) {
		if code, ok := s.conn.Keycode(sym); ok {
			return code, nil
		}
	}
	return 0, inputerr.KeyNotSupported(backendName, k)
}

// emitKey sends a press and/or a release of code, press first. state is
// the modifier mask used on the window-targeted path.
func (s *Simulator) emitKey(code xproto.Keycode, state uint16, press, release bool) error {
	if s.xtest {
		if press {
			if err := s.conn.FakeKey(code, true); err != nil {
				return err
			}
		}
		if release {
			return s.conn.FakeKey(code, false)
		}
		return nil
	}

	// Focus may move between calls, so it is resolved every time.
	window, err := s.conn.FocusedWindow()
	if err != nil {
		return err
	}
	logger.Debug("sending key event to focused window", "window", window, "keycode", code)
	if press {
		if err := s.conn.SendKeyEvent(window, code, state, true); err != nil {
			return err
		}
	}
	if release {
		return s.conn.SendKeyEvent(window, code, state, false)
	}
	return nil
}

func (s *Simulator) PressButton(b keys.Button) error {
	return s.buttonAction(b, true, false)
}

func (s *Simulator) ReleaseButton(b keys.Button) error {
	return s.buttonAction(b, false, true)
}

// SendButton clicks b: press then release, with a single flush.
func (s *Simulator) SendButton(b keys.Button) error {
	return s.buttonAction(b, true, true)
}

func (s *Simulator) buttonAction(b keys.Button, press, release bool) error {
	if s.closed {
		return inputerr.Failed(backendName, "button", errClosed)
	}
	code, ok := buttonCode(b)
	if !ok {
		return inputerr.ButtonNotSupported(backendName, b)
	}
	if s.xtest {
		if press {
			if err := s.conn.FakeButton(code, true); err != nil {
				return err
			}
		}
		if release {
			if err := s.conn.FakeButton(code, false); err != nil {
				return err
			}
		}
		return s.conn.Flush()
	}

	window, err := s.conn.FocusedWindow()
	if err != nil {
		return err
	}
	if press {
		if err := s.conn.SendButtonEvent(window, code, true); err != nil {
			return err
		}
	}
	if release {
		if err := s.conn.SendButtonEvent(window, code, false); err != nil {
			return err
		}
	}
	return s.conn.Flush()
}

// SendChar types one character.
func (s *Simulator) SendChar(c rune) error {
	if err := s.emitChar(c); err != nil {
		return err
	}
	return s.conn.Flush()
}

// SendChars types chars in order and flushes once for the whole sequence.
// The first character that cannot be typed stops the sequence; characters
// typed before it are not undone.
func (s *Simulator) SendChars(chars iter.Seq[rune]) error {
	sent := 0
	for c := range chars {
		if err := s.emitChar(c); err != nil {
			if sent == 0 {
				return err
			}
			// Deliver what was already typed before reporting.
			if ferr := s.conn.Flush(); ferr != nil {
				return errors.Join(err, ferr)
			}
			return err
		}
		sent++
	}
	if sent == 0 {
		return nil
	}
	return s.conn.Flush()
}

// SendString types s in encoding order.
func (s *Simulator) SendString(str string) error {
	return s.SendChars(runes(str))
}

// emitChar sends the events for c without flushing. Everything is resolved
// before the first event so an unsupported character sends nothing.
func (s *Simulator) emitChar(c rune) error {
	if s.closed {
		return inputerr.Failed(backendName, "send char", errClosed)
	}
	sym, shift, ok := charSymbol(c)
	if !ok {
		return inputerr.CharNotSupported(backendName, c)
	}
	code, ok := s.conn.Keycode(sym)
	if !ok {
		return inputerr.CharNotSupported(backendName, c)
	}

	if !s.xtest {
		var state uint16
		if shift {
			state = xproto.ModMaskShift
		}
		return s.emitKey(code, state, true, true)
	}

	if !shift {
		return s.emitKey(code, 0, true, true)
	}
	shiftCode, ok := s.conn.Keycode(xkShiftL)
	if !ok {
		return inputerr.KeyNotSupported(backendName, keys.LeftShift)
	}
	if err := s.conn.FakeKey(shiftCode, true); err != nil {
		return err
	}
	if err := s.emitKey(code, 0, true, true); err != nil {
		// Do not leave shift held.
		return errors.Join(err, s.conn.FakeKey(shiftCode, false))
	}
	return s.conn.FakeKey(shiftCode, false)
}

func runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}
