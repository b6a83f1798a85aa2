package virtual

import "github.com/bnema/keysim/pkg/keys"

// Key codes from linux/input-event-codes.h.
const (
	keyEsc        = 1
	keyBackspace  = 14
	keyTab        = 15
	keyEnter      = 28
	keyLeftCtrl   = 29
	keyLeftShift  = 42
	keyRightShift = 54
	keyKPAsterisk = 55
	keyLeftAlt    = 56
	keySpace      = 57
	keyCapsLock   = 58
	keyF1         = 59
	keyNumLock    = 69
	keyKPPlus     = 78
	keyKPDot      = 83
	keyF11        = 87
	keyF12        = 88
	keyKPEnter    = 96
	keyRightCtrl  = 97
	keyKPSlash    = 98
	keyRightAlt   = 100
	keyHome       = 102
	keyUp         = 103
	keyPageUp     = 104
	keyLeft       = 105
	keyRight      = 106
	keyEnd        = 107
	keyDown       = 108
	keyPageDown   = 109
	keyInsert     = 110
	keyDelete     = 111
	keyMute       = 113
	keyVolumeDown = 114
	keyVolumeUp   = 115
	keyKPEqual    = 117
	keyLeftMeta   = 125
	keyRightMeta  = 126
	keyNextSong   = 163
	keyPlayPause  = 164
	keyPrevSong   = 165
	keyStopCD     = 166
	keyF13        = 183
)

// US layout rows: the characters produced by consecutive key codes,
// without and with shift.
var layoutRows = []struct {
	first   int
	plain   string
	shifted string
}{
	{2, "1234567890-=", "!@#$%^&*()_+"},
	{16, "qwertyuiop[]", "QWERTYUIOP{}"},
	{30, "asdfghjkl;'`", `ASDFGHJKL:"~`},
	{43, `\zxcvbnm,./`, "|ZXCVBNM<>?"},
}

type charKey struct {
	code  int
	shift bool
}

var charKeys = func() map[rune]charKey {
	m := map[rune]charKey{
		' ':  {code: keySpace},
		'\n': {code: keyEnter},
		'\t': {code: keyTab},
	}
	for _, row := range layoutRows {
		for i, c := range []rune(row.plain) {
			m[c] = charKey{code: row.first + i}
		}
		for i, c := range []rune(row.shifted) {
			m[c] = charKey{code: row.first + i, shift: true}
		}
	}
	return m
}()

// keypad digits are not in row order.
var keypadDigits = [10]int{82, 79, 80, 81, 75, 76, 77, 71, 72, 73}

var keyCodes = map[keys.Key]int{
	keys.Escape:         keyEsc,
	keys.Tab:            keyTab,
	keys.CapsLock:       keyCapsLock,
	keys.LeftShift:      keyLeftShift,
	keys.LeftControl:    keyLeftCtrl,
	keys.LeftAlt:        keyLeftAlt,
	keys.LeftMeta:       keyLeftMeta,
	keys.Space:          keySpace,
	keys.RightMeta:      keyRightMeta,
	keys.RightAlt:       keyRightAlt,
	keys.RightControl:   keyRightCtrl,
	keys.RightShift:     keyRightShift,
	keys.Enter:          keyEnter,
	keys.Backspace:      keyBackspace,
	keys.Insert:         keyInsert,
	keys.Delete:         keyDelete,
	keys.Home:           keyHome,
	keys.End:            keyEnd,
	keys.PageUp:         keyPageUp,
	keys.PageDown:       keyPageDown,
	keys.ArrowUp:        keyUp,
	keys.ArrowDown:      keyDown,
	keys.ArrowLeft:      keyLeft,
	keys.ArrowRight:     keyRight,
	keys.NumLock:        keyNumLock,
	keys.NumpadEqual:    keyKPEqual,
	keys.NumpadDivide:   keyKPSlash,
	keys.NumpadMultiply: keyKPAsterisk,
	keys.NumpadAdd:      keyKPPlus,
	keys.NumpadEnter:    keyKPEnter,
	keys.NumpadDecimal:  keyKPDot,
	keys.VolumeUp:       keyVolumeUp,
	keys.VolumeDown:     keyVolumeDown,
	keys.VolumeMute:     keyMute,
	keys.MediaNext:      keyNextSong,
	keys.MediaPrevious:  keyPrevSong,
	keys.MediaStop:      keyStopCD,
	keys.MediaPause:     keyPlayPause,
}

// keyCode maps a key to its evdev code.
func keyCode(k keys.Key) (int, bool) {
	switch {
	case k >= keys.A && k <= keys.Z:
		c := charKeys[rune('a'+(k-keys.A))]
		return c.code, true
	case k >= keys.Zero && k <= keys.Nine:
		c := charKeys[rune('0'+(k-keys.Zero))]
		return c.code, true
	case k >= keys.F1 && k <= keys.F10:
		return keyF1 + int(k-keys.F1), true
	case k == keys.F11:
		return keyF11, true
	case k == keys.F12:
		return keyF12, true
	case k >= keys.F13 && k <= keys.F24:
		return keyF13 + int(k-keys.F13), true
	case k >= keys.Numpad0 && k <= keys.Numpad9:
		return keypadDigits[k-keys.Numpad0], true
	}
	code, ok := keyCodes[k]
	return code, ok
}
