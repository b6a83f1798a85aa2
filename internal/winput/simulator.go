// Package winput simulates input by submitting records to the Windows
// input queue through SendInput.
package winput

import (
	"iter"

	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/pkg/keys"
)

const backendName = "windows"

// Simulator submits one record array per action. It holds no connection;
// the input queue is shared by every process on the desktop.
type Simulator struct {
	sink Sink
}

// New returns a simulator backed by SendInput.
func New() (*Simulator, error) {
	sink, err := newSystemSink()
	if err != nil {
		return nil, inputerr.OpenFailed(backendName, err)
	}
	return NewWithSink(sink), nil
}

// NewWithSink returns a simulator submitting to sink.
func NewWithSink(sink Sink) *Simulator {
	return &Simulator{sink: sink}
}

func (s *Simulator) Name() string { return backendName }

// Close is a no-op; there is nothing to release.
func (s *Simulator) Close() error { return nil }

// Supports reports whether k has a virtual-key code.
func (s *Simulator) Supports(k keys.Key) bool {
	_, ok := virtualKeyOf(k)
	return ok
}

func (s *Simulator) PressKey(k keys.Key) error {
	v, ok := virtualKeyOf(k)
	if !ok {
		return inputerr.KeyNotSupported(backendName, k)
	}
	return submitAll(s.sink, []Record{keyRecord(v, true)})
}

func (s *Simulator) ReleaseKey(k keys.Key) error {
	v, ok := virtualKeyOf(k)
	if !ok {
		return inputerr.KeyNotSupported(backendName, k)
	}
	return submitAll(s.sink, []Record{keyRecord(v, false)})
}

func (s *Simulator) SendKey(k keys.Key) error {
	v, ok := virtualKeyOf(k)
	if !ok {
		return inputerr.KeyNotSupported(backendName, k)
	}
	return submitAll(s.sink, []Record{keyRecord(v, true), keyRecord(v, false)})
}

func (s *Simulator) PressButton(b keys.Button) error {
	press, _, ok := buttonRecords(b)
	if !ok {
		return inputerr.ButtonNotSupported(backendName, b)
	}
	return submitAll(s.sink, []Record{press})
}

func (s *Simulator) ReleaseButton(b keys.Button) error {
	_, release, ok := buttonRecords(b)
	if !ok {
		return inputerr.ButtonNotSupported(backendName, b)
	}
	return submitAll(s.sink, []Record{release})
}

func (s *Simulator) SendButton(b keys.Button) error {
	press, release, ok := buttonRecords(b)
	if !ok {
		return inputerr.ButtonNotSupported(backendName, b)
	}
	return submitAll(s.sink, []Record{press, release})
}

// SendChar types c as a unicode keystroke, independent of the active
// keyboard layout.
func (s *Simulator) SendChar(c rune) error {
	press, ok := charRecord(c, true)
	if !ok {
		return inputerr.CharNotSupported(backendName, c)
	}
	release, _ := charRecord(c, false)
	return submitAll(s.sink, []Record{press, release})
}

// SendChars types chars one at a time, stopping at the first failure.
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
