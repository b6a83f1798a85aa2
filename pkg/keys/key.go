// Package keys defines the portable vocabulary of keyboard keys and mouse
// buttons understood by every simulator backend.
package keys

import (
	"fmt"
	"strings"
)

// Key is a logical keyboard key, identified by the symbol it produces rather
// than by a physical position on the keyboard.
type Key uint8

// Keys known to every backend. A backend may still reject a key when the
// active environment has no native equivalent for it.
const (
	A Key = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	Zero
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine

	Escape
	Tab
	CapsLock
	LeftShift
	LeftControl
	LeftAlt
	LeftMeta
	Space
	RightMeta
	RightAlt
	RightControl
	RightShift
	Enter
	Backspace
	Insert
	Delete
	Home
	End
	PageUp
	PageDown
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight

	NumLock
	NumpadEqual
	NumpadDivide
	NumpadMultiply
	NumpadAdd
	NumpadEnter
	NumpadDecimal
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9

	VolumeUp
	VolumeDown
	VolumeMute
	MediaNext
	MediaPrevious
	MediaStop
	MediaPause

	keyCount
)

var keyNames = [keyCount]string{
	A:              "a",
	B:              "b",
	C:              "c",
	D:              "d",
	E:              "e",
	F:              "f",
	G:              "g",
	H:              "h",
	I:              "i",
	J:              "j",
	K:              "k",
	L:              "l",
	M:              "m",
	N:              "n",
	O:              "o",
	P:              "p",
	Q:              "q",
	R:              "r",
	S:              "s",
	T:              "t",
	U:              "u",
	V:              "v",
	W:              "w",
	X:              "x",
	Y:              "y",
	Z:              "z",
	F1:             "f1",
	F2:             "f2",
	F3:             "f3",
	F4:             "f4",
	F5:             "f5",
	F6:             "f6",
	F7:             "f7",
	F8:             "f8",
	F9:             "f9",
	F10:            "f10",
	F11:            "f11",
	F12:            "f12",
	F13:            "f13",
	F14:            "f14",
	F15:            "f15",
	F16:            "f16",
	F17:            "f17",
	F18:            "f18",
	F19:            "f19",
	F20:            "f20",
	F21:            "f21",
	F22:            "f22",
	F23:            "f23",
	F24:            "f24",
	Zero:           "0",
	One:            "1",
	Two:            "2",
	Three:          "3",
	Four:           "4",
	Five:           "5",
	Six:            "6",
	Seven:          "7",
	Eight:          "8",
	Nine:           "9",
	Escape:         "escape",
	Tab:            "tab",
	CapsLock:       "capslock",
	LeftShift:      "leftshift",
	LeftControl:    "leftcontrol",
	LeftAlt:        "leftalt",
	LeftMeta:       "leftmeta",
	Space:          "space",
	RightMeta:      "rightmeta",
	RightAlt:       "rightalt",
	RightControl:   "rightcontrol",
	RightShift:     "rightshift",
	Enter:          "enter",
	Backspace:      "backspace",
	Insert:         "insert",
	Delete:         "delete",
	Home:           "home",
	End:            "end",
	PageUp:         "pageup",
	PageDown:       "pagedown",
	ArrowUp:        "up",
	ArrowDown:      "down",
	ArrowLeft:      "left",
	ArrowRight:     "right",
	NumLock:        "numlock",
	NumpadEqual:    "kpequal",
	NumpadDivide:   "kpdivide",
	NumpadMultiply: "kpmultiply",
	NumpadAdd:      "kpadd",
	NumpadEnter:    "kpenter",
	NumpadDecimal:  "kpdecimal",
	Numpad0:        "kp0",
	Numpad1:        "kp1",
	Numpad2:        "kp2",
	Numpad3:        "kp3",
	Numpad4:        "kp4",
	Numpad5:        "kp5",
	Numpad6:        "kp6",
	Numpad7:        "kp7",
	Numpad8:        "kp8",
	Numpad9:        "kp9",
	VolumeUp:       "volumeup",
	VolumeDown:     "volumedown",
	VolumeMute:     "volumemute",
	MediaNext:      "medianext",
	MediaPrevious:  "mediaprevious",
	MediaStop:      "mediastop",
	MediaPause:     "mediapause",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k := Key(0); k < keyCount; k++ {
		m[keyNames[k]] = k
	}
	// Common aliases accepted on the command line.
	m["esc"] = Escape
	m["return"] = Enter
	m["shift"] = LeftShift
	m["ctrl"] = LeftControl
	m["control"] = LeftControl
	m["alt"] = LeftAlt
	m["meta"] = LeftMeta
	m["super"] = LeftMeta
	m["del"] = Delete
	return m
}()

// String returns the lowercase name of the key.
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// Valid reports whether k belongs to the vocabulary.
func (k Key) Valid() bool {
	return k < keyCount
}

// AllKeys returns every key of the vocabulary in declaration order.
func AllKeys() []Key {
	all := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		all = append(all, k)
	}
	return all
}

// ParseKey resolves a key name, as returned by String, case-insensitively.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
