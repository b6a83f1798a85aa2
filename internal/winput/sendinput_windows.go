//go:build windows

package winput

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// nativeInput mirrors INPUT. The union is sized and aligned by
// MOUSEINPUT, its largest member; KEYBDINPUT is written over it.
type nativeInput struct {
	Type  uint32
	Mouse mouseInput
}

func toNative(r Record) nativeInput {
	in := nativeInput{Type: r.Type}
	switch r.Type {
	case inputKeyboard:
		kbd := (*keybdInput)(unsafe.Pointer(&in.Mouse))
		kbd.Vk = r.VK
		kbd.Scan = r.Scan
		kbd.Flags = r.Flags
	case inputMouse:
		in.Mouse.MouseData = r.MouseData
		in.Mouse.Flags = r.Flags
	}
	return in
}

type systemSink struct{}

func newSystemSink() (Sink, error) {
	if err := procSendInput.Find(); err != nil {
		return nil, err
	}
	return systemSink{}, nil
}

func (systemSink) Submit(records []Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	native := make([]nativeInput, len(records))
	for i, r := range records {
		native[i] = toNative(r)
	}
	n, _, callErr := procSendInput.Call(
		uintptr(len(native)),
		uintptr(unsafe.Pointer(&native[0])),
		unsafe.Sizeof(native[0]),
	)
	if int(n) == len(native) {
		return int(n), nil
	}
	// Call always returns a non-nil Errno; zero means no error was set.
	if errno, ok := callErr.(syscall.Errno); ok && errno == 0 {
		return int(n), nil
	}
	return int(n), callErr
}
