package virtual

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/pkg/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	events  []string
	failOn  int // fail the nth key event (1-based), 0 never
	count   int
	closed  int
	closeFn func() error
}

func (f *fakeDevice) KeyDown(code int) error { return f.key(code, "down") }
func (f *fakeDevice) KeyUp(code int) error   { return f.key(code, "up") }

func (f *fakeDevice) key(code int, dir string) error {
	f.count++
	if f.failOn == f.count {
		return errors.New("write failed")
	}
	f.events = append(f.events, fmt.Sprintf("key %d %s", code, dir))
	return nil
}

func (f *fakeDevice) Button(kind keys.ButtonKind, press bool) error {
	dir := "up"
	if press {
		dir = "down"
	}
	f.events = append(f.events, fmt.Sprintf("button %d %s", kind, dir))
	return nil
}

func (f *fakeDevice) Close() error {
	f.closed++
	if f.closeFn != nil {
		return f.closeFn()
	}
	return nil
}

func TestKeyCodesCoverVocabulary(t *testing.T) {
	seen := make(map[int]keys.Key)
	for _, k := range keys.AllKeys() {
		code, ok := keyCode(k)
		require.True(t, ok, "key %s has no evdev code", k)
		require.NotZero(t, code, "key %s maps to KEY_RESERVED", k)
		if prev, dup := seen[code]; dup {
			t.Errorf("code %d shared by %s and %s", code, prev, k)
		}
		seen[code] = k
	}
}

func TestKeyCodeSpotChecks(t *testing.T) {
	tests := map[keys.Key]int{
		keys.A:       30,
		keys.Q:       16,
		keys.M:       50,
		keys.One:     2,
		keys.Zero:    11,
		keys.F10:     68,
		keys.F11:     87,
		keys.F13:     183,
		keys.F24:     194,
		keys.Numpad0: 82,
		keys.Numpad7: 71,
		keys.Enter:   28,
	}
	for k, want := range tests {
		got, ok := keyCode(k)
		require.True(t, ok)
		assert.Equal(t, want, got, "key %s", k)
	}
}

func TestCharKeys(t *testing.T) {
	assert.Equal(t, charKey{code: 40}, charKeys['\''])
	assert.Equal(t, charKey{code: 40, shift: true}, charKeys['"'])
	assert.Equal(t, charKey{code: 43, shift: true}, charKeys['|'])
	assert.Equal(t, charKey{code: 53, shift: true}, charKeys['?'])
	assert.Equal(t, charKey{code: 30, shift: true}, charKeys['A'])
	// Every printable ASCII character is typeable.
	for c := rune(' '); c <= '~'; c++ {
		_, ok := charKeys[c]
		assert.True(t, ok, "char %q missing", c)
	}
}

func TestSendKey(t *testing.T) {
	dev := &fakeDevice{}
	sim := newSimulator(dev)

	require.NoError(t, sim.SendKey(keys.Escape))
	require.NoError(t, sim.PressKey(keys.LeftAlt))
	require.NoError(t, sim.ReleaseKey(keys.LeftAlt))
	assert.Equal(t, []string{"key 1 down", "key 1 up", "key 56 down", "key 56 up"}, dev.events)
}

func TestSendShiftedChar(t *testing.T) {
	dev := &fakeDevice{}
	sim := newSimulator(dev)

	require.NoError(t, sim.SendChar('Q'))
	assert.Equal(t, []string{"key 42 down", "key 16 down", "key 16 up", "key 42 up"}, dev.events)
}

func TestShiftReleasedWhenCharFails(t *testing.T) {
	dev := &fakeDevice{failOn: 2}
	sim := newSimulator(dev)

	err := sim.SendChar('Q')
	require.ErrorIs(t, err, inputerr.ErrUnexpected)
	assert.Equal(t, []string{"key 42 down", "key 42 up"}, dev.events)
}

func TestSendStringStopsAtFirstUnsupportedChar(t *testing.T) {
	dev := &fakeDevice{}
	sim := newSimulator(dev)

	err := sim.SendString("aéb")
	require.ErrorIs(t, err, inputerr.ErrUnsupportedChar)
	var ierr *inputerr.Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 'é', ierr.Char)
	assert.Equal(t, []string{"key 30 down", "key 30 up"}, dev.events)
}

func TestSendChars(t *testing.T) {
	dev := &fakeDevice{}
	sim := newSimulator(dev)

	require.NoError(t, sim.SendChars(slices.Values([]rune{'1', '\n'})))
	assert.Equal(t, []string{"key 2 down", "key 2 up", "key 28 down", "key 28 up"}, dev.events)
}

func TestButtons(t *testing.T) {
	dev := &fakeDevice{}
	sim := newSimulator(dev)

	require.NoError(t, sim.SendButton(keys.Left))
	require.NoError(t, sim.PressButton(keys.Right))
	require.NoError(t, sim.ReleaseButton(keys.Right))
	assert.Equal(t, []string{
		fmt.Sprintf("button %d down", keys.ButtonLeft),
		fmt.Sprintf("button %d up", keys.ButtonLeft),
		fmt.Sprintf("button %d down", keys.ButtonRight),
		fmt.Sprintf("button %d up", keys.ButtonRight),
	}, dev.events)

	dev.events = nil
	assert.ErrorIs(t, sim.SendButton(keys.Extra(0)), inputerr.ErrUnsupportedButton)
	assert.ErrorIs(t, sim.PressButton(keys.Extra(1)), inputerr.ErrUnsupportedButton)
	assert.Empty(t, dev.events)
}

func TestCloseOnce(t *testing.T) {
	dev := &fakeDevice{closeFn: func() error { return errors.New("busy") }}
	sim := newSimulator(dev)

	err := sim.Close()
	require.ErrorIs(t, err, inputerr.ErrUnexpected)
	assert.Equal(t, err, sim.Close())
	assert.Equal(t, 1, dev.closed)
}

func TestNewWithoutDevice(t *testing.T) {
	_, err := New(Options{DevicePath: "/nonexistent/uinput"})
	require.Error(t, err)
	assert.ErrorIs(t, err, inputerr.ErrOpen)
}

func TestSupports(t *testing.T) {
	sim := newSimulator(&fakeDevice{})
	for _, k := range keys.AllKeys() {
		assert.True(t, sim.Supports(k), "key %s", k)
	}
	assert.False(t, sim.Supports(keys.Key(250)))
}
