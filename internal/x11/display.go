package x11

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/internal/logger"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
)

const backendName = "x11"

// errClosed is the cause reported for operations on a closed display.
var errClosed = errors.New("display is closed")

// Display owns one live connection to the X server. It is created only by
// Open and must be released with Close. A Display is not safe for
// concurrent use; callers must confine it to one goroutine or serialize
// access themselves.
type Display struct {
	conn  *xgb.Conn
	root  xproto.Window
	xtest bool

	minKeycode xproto.Keycode
	maxKeycode xproto.Keycode
	perKeycode int
	keymap     []xproto.Keysym

	closeOnce sync.Once
	closed    bool
}

// Open connects to the named display, or to $DISPLAY when name is empty.
// On failure no connection is left open.
func Open(name string) (*Display, error) {
	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, inputerr.OpenFailed(backendName, err)
	}

	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) == 0 {
		conn.Close()
		return nil, inputerr.OpenFailed(backendName, errors.New("server sent no screens"))
	}

	d := &Display{
		conn:       conn,
		root:       setup.DefaultScreen(conn).Root,
		minKeycode: setup.MinKeycode,
		maxKeycode: setup.MaxKeycode,
	}
	if err := d.loadKeymap(); err != nil {
		conn.Close()
		return nil, inputerr.OpenFailed(backendName, err)
	}
	d.xtest = d.negotiateXTest()
	return d, nil
}

// negotiateXTest asks the server for the XTEST extension. Absence is a
// normal outcome.
func (d *Display) negotiateXTest() bool {
	if err := xtest.Init(d.conn); err != nil {
		logger.Debug("XTEST extension unavailable", "err", err)
		return false
	}
	reply, err := xtest.GetVersion(d.conn, 2, 2).Reply()
	if err != nil {
		logger.Debug("XTEST version query failed", "err", err)
		return false
	}
	logger.Debug("XTEST extension available", "major", reply.MajorVersion, "minor", reply.MinorVersion)
	return true
}

// QueryExtension reports whether the server supports hardware-level event
// injection. The negotiation happens once, when the display is opened.
func (d *Display) QueryExtension() bool {
	return d.xtest
}

func (d *Display) loadKeymap() error {
	count := int(d.maxKeycode) - int(d.minKeycode) + 1
	if count <= 0 {
		return fmt.Errorf("invalid keycode range %d..%d", d.minKeycode, d.maxKeycode)
	}
	reply, err := xproto.GetKeyboardMapping(d.conn, d.minKeycode, byte(count)).Reply()
	if err != nil {
		return fmt.Errorf("get keyboard mapping: %w", err)
	}
	if reply.KeysymsPerKeycode == 0 {
		return errors.New("keyboard mapping has zero keysyms per keycode")
	}
	d.perKeycode = int(reply.KeysymsPerKeycode)
	d.keymap = reply.Keysyms
	return nil
}

func (d *Display) lookup(sym xproto.Keysym) (xproto.Keycode, bool) {
	if d.perKeycode == 0 {
		return 0, false
	}
	for i, s := range d.keymap {
		if s == sym {
			return xproto.Keycode(int(d.minKeycode) + i/d.perKeycode), true
		}
	}
	return 0, false
}

// Keycode maps a keysym to the hardware keycode producing it in the
// server's active keyboard mapping. When the cached mapping has no entry
// it is reloaded once, in case the layout changed since the last lookup.
// It never fabricates a code: false means no physical key produces sym.
func (d *Display) Keycode(sym xproto.Keysym) (xproto.Keycode, bool) {
	if d.closed {
		return 0, false
	}
	if code, ok := d.lookup(sym); ok {
		return code, true
	}
	if err := d.loadKeymap(); err != nil {
		logger.Debug("reloading keyboard mapping failed", "err", err)
		return 0, false
	}
	return d.lookup(sym)
}

// FocusedWindow returns the window currently holding the input focus.
func (d *Display) FocusedWindow() (xproto.Window, error) {
	if d.closed {
		return 0, inputerr.Failed(backendName, "get input focus", errClosed)
	}
	reply, err := xproto.GetInputFocus(d.conn).Reply()
	if err != nil {
		return 0, inputerr.Failed(backendName, "get input focus", err)
	}
	return reply.Focus, nil
}

// FakeKey injects a key event through XTEST. Errors raised by the server
// for this request are reported by the next Flush.
func (d *Display) FakeKey(code xproto.Keycode, press bool) error {
	return d.fakeInput(keyEventType(press), byte(code))
}

// FakeButton injects a button event through XTEST.
func (d *Display) FakeButton(button xproto.Button, press bool) error {
	return d.fakeInput(buttonEventType(press), byte(button))
}

func (d *Display) fakeInput(eventType, detail byte) error {
	if d.closed {
		return inputerr.Failed(backendName, "fake input", errClosed)
	}
	xtest.FakeInput(d.conn, eventType, detail, xproto.TimeCurrentTime, xproto.WindowNone, 0, 0, 0)
	return nil
}

// SendKeyEvent delivers a synthetic key event to window, with state as the
// modifier mask the receiving client will observe.
func (d *Display) SendKeyEvent(window xproto.Window, code xproto.Keycode, state uint16, press bool) error {
	event := xproto.KeyPressEvent{
		Detail:     code,
		Time:       xproto.TimeCurrentTime,
		Root:       d.root,
		Event:      window,
		Child:      xproto.WindowNone,
		State:      state,
		SameScreen: true,
	}
	mask := uint32(xproto.EventMaskKeyRelease)
	if press {
		mask = xproto.EventMaskKeyPress
	}
	return d.sendEvent(window, mask, keyEventType(press), event.Bytes())
}

// SendButtonEvent delivers a synthetic button event to window.
func (d *Display) SendButtonEvent(window xproto.Window, button xproto.Button, press bool) error {
	event := xproto.ButtonPressEvent{
		Detail:     button,
		Time:       xproto.TimeCurrentTime,
		Root:       d.root,
		Event:      window,
		Child:      xproto.WindowNone,
		SameScreen: true,
	}
	mask := uint32(xproto.EventMaskButtonRelease)
	if press {
		mask = xproto.EventMaskButtonPress
	}
	return d.sendEvent(window, mask, buttonEventType(press), event.Bytes())
}

func (d *Display) sendEvent(window xproto.Window, mask uint32, eventType byte, raw []byte) error {
	if d.closed {
		return inputerr.Failed(backendName, "send event", errClosed)
	}
	// The press and release events share one encoder; the first byte
	// carries the real event code. The server sets the send_event bit.
	raw[0] = eventType
	if err := xproto.SendEventChecked(d.conn, true, window, mask, string(raw)).Check(); err != nil {
		return inputerr.Failed(backendName, "send event", err)
	}
	return nil
}

// Flush forces buffered requests to the server with a round trip, then
// reports any error the server raised for requests sent since the last
// flush. A failed round trip is treated as a failure.
func (d *Display) Flush() error {
	if d.closed {
		return inputerr.Failed(backendName, "flush", errClosed)
	}
	if _, err := xproto.GetInputFocus(d.conn).Reply(); err != nil {
		return inputerr.Failed(backendName, "flush", err)
	}
	var errs []error
	for {
		ev, xerr := d.conn.PollForEvent()
		if ev == nil && xerr == nil {
			break
		}
		if xerr != nil {
			errs = append(errs, xerr)
		}
	}
	if len(errs) > 0 {
		return inputerr.Failed(backendName, "flush", errors.Join(errs...))
	}
	return nil
}

// Close releases the connection. It is safe to call more than once; only
// the first call closes.
func (d *Display) Close() error {
	d.closeOnce.Do(func() {
		d.closed = true
		d.conn.Close()
	})
	return nil
}

func keyEventType(press bool) byte {
	if press {
		return xproto.KeyPress
	}
	return xproto.KeyRelease
}

func buttonEventType(press bool) byte {
	if press {
		return xproto.ButtonPress
	}
	return xproto.ButtonRelease
}
