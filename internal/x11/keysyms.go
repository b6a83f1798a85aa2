package x11

import (
	"strings"

	"github.com/bnema/keysim/pkg/keys"
	"github.com/jezek/xgb/xproto"
)

// Keysyms from X11/keysymdef.h and X11/XF86keysym.h.
const (
	xkBackSpace xproto.Keysym = 0xff08
	xkTab       xproto.Keysym = 0xff09
	xkReturn    xproto.Keysym = 0xff0d
	xkEscape    xproto.Keysym = 0xff1b
	xkHome      xproto.Keysym = 0xff50
	xkLeft      xproto.Keysym = 0xff51
	xkUp        xproto.Keysym = 0xff52
	xkRight     xproto.Keysym = 0xff53
	xkDown      xproto.Keysym = 0xff54
	xkPageUp    xproto.Keysym = 0xff55
	xkPageDown  xproto.Keysym = 0xff56
	xkEnd       xproto.Keysym = 0xff57
	xkInsert    xproto.Keysym = 0xff63
	xkNumLock   xproto.Keysym = 0xff7f
	xkKPEnter   xproto.Keysym = 0xff8d
	xkKPMul     xproto.Keysym = 0xffaa
	xkKPAdd     xproto.Keysym = 0xffab
	xkKPDecimal xproto.Keysym = 0xffae
	xkKPDivide  xproto.Keysym = 0xffaf
	xkKP0       xproto.Keysym = 0xffb0
	xkKPEqual   xproto.Keysym = 0xffbd
	xkF1        xproto.Keysym = 0xffbe
	xkShiftL    xproto.Keysym = 0xffe1
	xkShiftR    xproto.Keysym = 0xffe2
	xkControlL  xproto.Keysym = 0xffe3
	xkControlR  xproto.Keysym = 0xffe4
	xkCapsLock  xproto.Keysym = 0xffe5
	xkMetaL     xproto.Keysym = 0xffe7
	xkMetaR     xproto.Keysym = 0xffe8
	xkAltL      xproto.Keysym = 0xffe9
	xkAltR      xproto.Keysym = 0xffea
	xkSuperL    xproto.Keysym = 0xffeb
	xkSuperR    xproto.Keysym = 0xffec
	xkDelete    xproto.Keysym = 0xffff

	xfAudioLowerVolume xproto.Keysym = 0x1008ff11
	xfAudioMute        xproto.Keysym = 0x1008ff12
	xfAudioRaiseVolume xproto.Keysym = 0x1008ff13
	xfAudioStop        xproto.Keysym = 0x1008ff15
	xfAudioPrev        xproto.Keysym = 0x1008ff16
	xfAudioNext        xproto.Keysym = 0x1008ff17
	xfAudioPause       xproto.Keysym = 0x1008ff31
)

// keySymbols lists, for each key, the keysyms to try in order. Most keys
// have exactly one; the meta keys fall back to Super, which is what most
// layouts bind to the logo keys.
func keySymbols(k keys.Key) []xproto.Keysym {
	switch {
	case k >= keys.A && k <= keys.Z:
		// Latin-1 keysyms equal their code points.
		return []xproto.Keysym{xproto.Keysym('A' + (k - keys.A))}
	case k >= keys.F1 && k <= keys.F24:
		return []xproto.Keysym{xkF1 + xproto.Keysym(k-keys.F1)}
	case k >= keys.Zero && k <= keys.Nine:
		return []xproto.Keysym{xproto.Keysym('0' + (k - keys.Zero))}
	case k >= keys.Numpad0 && k <= keys.Numpad9:
		return []xproto.Keysym{xkKP0 + xproto.Keysym(k-keys.Numpad0)}
	}

	switch k {
	case keys.Escape:
		return []xproto.Keysym{xkEscape}
	case keys.Tab:
		return []xproto.Keysym{xkTab}
	case keys.CapsLock:
		return []xproto.Keysym{xkCapsLock}
	case keys.LeftShift:
		return []xproto.Keysym{xkShiftL}
	case keys.LeftControl:
		return []xproto.Keysym{xkControlL}
	case keys.LeftAlt:
		return []xproto.Keysym{xkAltL}
	case keys.LeftMeta:
		return []xproto.Keysym{xkMetaL, xkSuperL}
	case keys.Space:
		return []xproto.Keysym{' '}
	case keys.RightMeta:
		return []xproto.Keysym{xkMetaR, xkSuperR}
	case keys.RightAlt:
		return []xproto.Keysym{xkAltR}
	case keys.RightControl:
		return []xproto.Keysym{xkControlR}
	case keys.RightShift:
		return []xproto.Keysym{xkShiftR}
	case keys.Enter:
		return []xproto.Keysym{xkReturn}
	case keys.Backspace:
		return []xproto.Keysym{xkBackSpace}
	case keys.Insert:
		return []xproto.Keysym{xkInsert}
	case keys.Delete:
		return []xproto.Keysym{xkDelete}
	case keys.Home:
		return []xproto.Keysym{xkHome}
	case keys.End:
		return []xproto.Keysym{xkEnd}
	case keys.PageUp:
		return []xproto.Keysym{xkPageUp}
	case keys.PageDown:
		return []xproto.Keysym{xkPageDown}
	case keys.ArrowUp:
		return []xproto.Keysym{xkUp}
	case keys.ArrowDown:
		return []xproto.Keysym{xkDown}
	case keys.ArrowLeft:
		return []xproto.Keysym{xkLeft}
	case keys.ArrowRight:
		return []xproto.Keysym{xkRight}
	case keys.NumLock:
		return []xproto.Keysym{xkNumLock}
	case keys.NumpadEqual:
		return []xproto.Keysym{xkKPEqual}
	case keys.NumpadDivide:
		return []xproto.Keysym{xkKPDivide}
	case keys.NumpadMultiply:
		return []xproto.Keysym{xkKPMul}
	case keys.NumpadAdd:
		return []xproto.Keysym{xkKPAdd}
	case keys.NumpadEnter:
		return []xproto.Keysym{xkKPEnter}
	case keys.NumpadDecimal:
		return []xproto.Keysym{xkKPDecimal}
	case keys.VolumeUp:
		return []xproto.Keysym{xfAudioRaiseVolume}
	case keys.VolumeDown:
		return []xproto.Keysym{xfAudioLowerVolume}
	case keys.VolumeMute:
		return []xproto.Keysym{xfAudioMute}
	case keys.MediaNext:
		return []xproto.Keysym{xfAudioNext}
	case keys.MediaPrevious:
		return []xproto.Keysym{xfAudioPrev}
	case keys.MediaStop:
		return []xproto.Keysym{xfAudioStop}
	case keys.MediaPause:
		return []xproto.Keysym{xfAudioPause}
	}
	return nil
}

// shiftedASCII holds the printable characters typed with shift on a US
// layout, letters excluded.
const shiftedASCII = `~!@#$%^&*()_+{}|:"<>?`

// charSymbol maps a character to a keysym and whether shift must be held
// to produce it. Only characters of the US layout are supported.
func charSymbol(c rune) (sym xproto.Keysym, shift bool, ok bool) {
	switch {
	case c == '\n':
		return xkReturn, false, true
	case c == '\t':
		return xkTab, false, true
	case c >= 'A' && c <= 'Z':
		return xproto.Keysym(c), true, true
	case c >= ' ' && c <= '~':
		return xproto.Keysym(c), strings.ContainsRune(shiftedASCII, c), true
	}
	return 0, false, false
}

// buttonCode maps a button to its core protocol button number. Buttons 4
// to 7 are the scroll wheel, so extra buttons start at 8.
func buttonCode(b keys.Button) (xproto.Button, bool) {
	switch b.Kind {
	case keys.ButtonLeft:
		return xproto.ButtonIndex1, true
	case keys.ButtonMiddle:
		return xproto.ButtonIndex2, true
	case keys.ButtonRight:
		return xproto.ButtonIndex3, true
	case keys.ButtonExtra:
		if int(b.Index)+8 <= 255 {
			return xproto.Button(b.Index + 8), true
		}
	}
	return 0, false
}
