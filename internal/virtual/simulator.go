// Package virtual simulates input through kernel-level virtual devices
// created with uinput. It works under any display server, including
// Wayland compositors, but needs write access to the uinput node.
package virtual

import (
	"errors"
	"iter"
	"sync"

	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/internal/logger"
	"github.com/bnema/keysim/pkg/keys"
)

const backendName = "uinput"

// device is a virtual keyboard and mouse. Every call is delivered to the
// kernel immediately.
type device interface {
	KeyDown(code int) error
	KeyUp(code int) error
	Button(kind keys.ButtonKind, press bool) error
	Close() error
}

// Options names the device node and the name the virtual devices advertise.
type Options struct {
	DevicePath string
	DeviceName string
}

// Simulator drives one pair of virtual devices. It is not safe for
// concurrent use.
type Simulator struct {
	dev       device
	closeOnce sync.Once
	closeErr  error
}

// New creates the virtual devices.
func New(opts Options) (*Simulator, error) {
	if opts.DevicePath == "" {
		opts.DevicePath = "/dev/uinput"
	}
	if opts.DeviceName == "" {
		opts.DeviceName = "keysim virtual input"
	}
	dev, err := openDevice(opts.DevicePath, opts.DeviceName)
	if err != nil {
		return nil, inputerr.OpenFailed(backendName, err)
	}
	logger.Debug("uinput devices created", "path", opts.DevicePath, "name", opts.DeviceName)
	return newSimulator(dev), nil
}

func newSimulator(dev device) *Simulator {
	return &Simulator{dev: dev}
}

func (s *Simulator) Name() string { return backendName }

func (s *Simulator) Supports(k keys.Key) bool {
	_, ok := keyCode(k)
	return ok
}

// Close destroys the virtual devices once.
func (s *Simulator) Close() error {
	s.closeOnce.Do(func() {
		if err := s.dev.Close(); err != nil {
			s.closeErr = inputerr.Failed(backendName, "close", err)
		}
	})
	return s.closeErr
}

func (s *Simulator) PressKey(k keys.Key) error {
	code, ok := keyCode(k)
	if !ok {
		return inputerr.KeyNotSupported(backendName, k)
	}
	return s.key(code, true)
}

func (s *Simulator) ReleaseKey(k keys.Key) error {
	code, ok := keyCode(k)
	if !ok {
		return inputerr.KeyNotSupported(backendName, k)
	}
	return s.key(code, false)
}

func (s *Simulator) SendKey(k keys.Key) error {
	code, ok := keyCode(k)
	if !ok {
		return inputerr.KeyNotSupported(backendName, k)
	}
	return s.tap(code)
}

func (s *Simulator) key(code int, press bool) error {
	var err error
	if press {
		err = s.dev.KeyDown(code)
	} else {
		err = s.dev.KeyUp(code)
	}
	if err != nil {
		return inputerr.Failed(backendName, "key event", err)
	}
	return nil
}

func (s *Simulator) tap(code int) error {
	if err := s.key(code, true); err != nil {
		return err
	}
	return s.key(code, false)
}

func (s *Simulator) PressButton(b keys.Button) error {
	if b.Kind == keys.ButtonExtra {
		return inputerr.ButtonNotSupported(backendName, b)
	}
	return s.button(b, true)
}

func (s *Simulator) ReleaseButton(b keys.Button) error {
	if b.Kind == keys.ButtonExtra {
		return inputerr.ButtonNotSupported(backendName, b)
	}
	return s.button(b, false)
}

func (s *Simulator) SendButton(b keys.Button) error {
	if b.Kind == keys.ButtonExtra {
		return inputerr.ButtonNotSupported(backendName, b)
	}
	if err := s.button(b, true); err != nil {
		return err
	}
	return s.button(b, false)
}

func (s *Simulator) button(b keys.Button, press bool) error {
	if err := s.dev.Button(b.Kind, press); err != nil {
		return inputerr.Failed(backendName, "button event", err)
	}
	return nil
}

// SendChar types c using the US layout, holding shift around the key when
// the character needs it.
func (s *Simulator) SendChar(c rune) error {
	ck, ok := charKeys[c]
	if !ok {
		return inputerr.CharNotSupported(backendName, c)
	}
	if !ck.shift {
		return s.tap(ck.code)
	}
	if err := s.key(keyLeftShift, true); err != nil {
		return err
	}
	if err := s.tap(ck.code); err != nil {
		return errors.Join(err, s.key(keyLeftShift, false))
	}
	return s.key(keyLeftShift, false)
}

// SendChars types chars in order, stopping at the first failure.
func (s *Simulator) SendChars(chars iter.Seq[rune]) error {
	for c := range chars {
		if err := s.SendChar(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) SendString(str string) error {
	for _, c := range str {
		if err := s.SendChar(c); err != nil {
			return err
		}
	}
	return nil
}
