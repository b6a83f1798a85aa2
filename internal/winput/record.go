package winput

// Record is one entry of the array handed to SendInput. It carries only
// the fields this package sets; the platform sink expands it to the native
// INPUT layout, with time and extra info left zero so the system stamps
// the event itself.
type Record struct {
	Type      uint32
	VK        uint16
	Scan      uint16
	Flags     uint32
	MouseData uint32
}

// INPUT.type values.
const (
	inputMouse    uint32 = 0
	inputKeyboard uint32 = 1
)

// KEYBDINPUT.dwFlags bits.
const (
	keyEventExtendedKey uint32 = 0x0001
	keyEventKeyUp       uint32 = 0x0002
	keyEventUnicode     uint32 = 0x0004
)

// MOUSEINPUT.dwFlags bits.
const (
	mouseEventLeftDown   uint32 = 0x0002
	mouseEventLeftUp     uint32 = 0x0004
	mouseEventRightDown  uint32 = 0x0008
	mouseEventRightUp    uint32 = 0x0010
	mouseEventMiddleDown uint32 = 0x0020
	mouseEventMiddleUp   uint32 = 0x0040
	mouseEventXDown      uint32 = 0x0080
	mouseEventXUp        uint32 = 0x0100
)

// MOUSEINPUT.mouseData values for the X buttons.
const (
	xButton1 uint32 = 0x0001
	xButton2 uint32 = 0x0002
)

func keyRecord(vk virtualKey, press bool) Record {
	r := Record{Type: inputKeyboard, VK: vk.code}
	if vk.extended {
		r.Flags |= keyEventExtendedKey
	}
	if !press {
		r.Flags |= keyEventKeyUp
	}
	return r
}

// charRecord builds a unicode keystroke record. Characters outside the
// basic multilingual plane do not fit the 16-bit scan field.
func charRecord(c rune, press bool) (Record, bool) {
	if c < 0 || c > 0xffff {
		return Record{}, false
	}
	r := Record{Type: inputKeyboard, Scan: uint16(c), Flags: keyEventUnicode}
	if !press {
		r.Flags |= keyEventKeyUp
	}
	return r, true
}
