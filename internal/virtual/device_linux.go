//go:build linux

package virtual

import (
	"fmt"

	"github.com/ThomasT75/uinput"
	"github.com/bnema/keysim/pkg/keys"
)

// uinputDevice pairs a virtual keyboard with a virtual mouse; uinput
// exposes them as separate devices.
type uinputDevice struct {
	keyboard uinput.Keyboard
	mouse    uinput.Mouse
}

func openDevice(path, name string) (device, error) {
	keyboard, err := uinput.CreateKeyboard(path, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	mouse, err := uinput.CreateMouse(path, []byte(name+" pointer"))
	if err != nil {
		keyboard.Close()
		return nil, fmt.Errorf("failed to create virtual mouse: %w", err)
	}
	return &uinputDevice{keyboard: keyboard, mouse: mouse}, nil
}

func (d *uinputDevice) KeyDown(code int) error { return d.keyboard.KeyDown(code) }
func (d *uinputDevice) KeyUp(code int) error   { return d.keyboard.KeyUp(code) }

func (d *uinputDevice) Button(kind keys.ButtonKind, press bool) error {
	switch kind {
	case keys.ButtonLeft:
		if press {
			return d.mouse.LeftPress()
		}
		return d.mouse.LeftRelease()
	case keys.ButtonRight:
		if press {
			return d.mouse.RightPress()
		}
		return d.mouse.RightRelease()
	case keys.ButtonMiddle:
		if press {
			return d.mouse.MiddlePress()
		}
		return d.mouse.MiddleRelease()
	}
	return fmt.Errorf("button kind %d not supported by uinput", kind)
}

func (d *uinputDevice) Close() error {
	kerr := d.keyboard.Close()
	merr := d.mouse.Close()
	if kerr != nil {
		return kerr
	}
	return merr
}
