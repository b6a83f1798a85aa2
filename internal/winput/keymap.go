package winput

import "github.com/bnema/keysim/pkg/keys"

type virtualKey struct {
	code uint16
	// extended marks keys that live on the extended part of the keyboard,
	// such as the navigation cluster or the numpad enter key.
	extended bool
}

func vk(code uint16) virtualKey  { return virtualKey{code: code} }
func ext(code uint16) virtualKey { return virtualKey{code: code, extended: true} }

// VK_* values from winuser.h.
var virtualKeys = map[keys.Key]virtualKey{
	keys.Escape:         vk(0x1b),
	keys.Tab:            vk(0x09),
	keys.CapsLock:       vk(0x14),
	keys.LeftShift:      vk(0xa0),
	keys.RightShift:     vk(0xa1),
	keys.LeftControl:    vk(0xa2),
	keys.RightControl:   ext(0xa3),
	keys.LeftAlt:        vk(0xa4),
	keys.RightAlt:       ext(0xa5),
	keys.LeftMeta:       ext(0x5b),
	keys.RightMeta:      ext(0x5c),
	keys.Space:          vk(0x20),
	keys.Enter:          vk(0x0d),
	keys.Backspace:      vk(0x08),
	keys.Insert:         ext(0x2d),
	keys.Delete:         ext(0x2e),
	keys.Home:           ext(0x24),
	keys.End:            ext(0x23),
	keys.PageUp:         ext(0x21),
	keys.PageDown:       ext(0x22),
	keys.ArrowLeft:      ext(0x25),
	keys.ArrowUp:        ext(0x26),
	keys.ArrowRight:     ext(0x27),
	keys.ArrowDown:      ext(0x28),
	keys.NumLock:        ext(0x90),
	keys.NumpadDivide:   ext(0x6f),
	keys.NumpadMultiply: vk(0x6a),
	keys.NumpadAdd:      vk(0x6b),
	keys.NumpadEnter:    ext(0x0d),
	keys.NumpadDecimal:  vk(0x6e),
	keys.VolumeMute:     ext(0xad),
	keys.VolumeDown:     ext(0xae),
	keys.VolumeUp:       ext(0xaf),
	keys.MediaNext:      ext(0xb0),
	keys.MediaPrevious:  ext(0xb1),
	keys.MediaStop:      ext(0xb2),
	keys.MediaPause:     ext(0xb3),
}

// virtualKeyOf maps a key to its virtual-key code. NumpadEqual has no
// virtual key on standard keyboards.
func virtualKeyOf(k keys.Key) (virtualKey, bool) {
	switch {
	case k >= keys.A && k <= keys.Z:
		return vk(uint16('A' + (k - keys.A))), true
	case k >= keys.Zero && k <= keys.Nine:
		return vk(uint16('0' + (k - keys.Zero))), true
	case k >= keys.F1 && k <= keys.F24:
		return vk(0x70 + uint16(k-keys.F1)), true
	case k >= keys.Numpad0 && k <= keys.Numpad9:
		return vk(0x60 + uint16(k-keys.Numpad0)), true
	}
	v, ok := virtualKeys[k]
	return v, ok
}

// buttonRecords returns the press and release records for b.
func buttonRecords(b keys.Button) (press, release Record, ok bool) {
	var down, up, data uint32
	switch b.Kind {
	case keys.ButtonLeft:
		down, up = mouseEventLeftDown, mouseEventLeftUp
	case keys.ButtonRight:
		down, up = mouseEventRightDown, mouseEventRightUp
	case keys.ButtonMiddle:
		down, up = mouseEventMiddleDown, mouseEventMiddleUp
	case keys.ButtonExtra:
		switch b.Index {
		case 0:
			data = xButton1
		case 1:
			data = xButton2
		default:
			return Record{}, Record{}, false
		}
		down, up = mouseEventXDown, mouseEventXUp
	default:
		return Record{}, Record{}, false
	}
	press = Record{Type: inputMouse, Flags: down, MouseData: data}
	release = Record{Type: inputMouse, Flags: up, MouseData: data}
	return press, release, true
}
