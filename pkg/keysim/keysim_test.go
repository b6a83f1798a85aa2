package keysim

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/bnema/keysim/internal/config"
	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/internal/winput"
	"github.com/bnema/keysim/pkg/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records calls. Keys in unsupported have no native code;
// keys in failing resolve but fail when sent.
type fakeBackend struct {
	calls       []string
	unsupported map[keys.Key]bool
	failing     map[keys.Key]bool
	xtest       *bool
	closeErr    error
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Supports(k keys.Key) bool { return !f.unsupported[k] }

func (f *fakeBackend) keyCall(op string, k keys.Key) error {
	if f.unsupported[k] {
		return inputerr.KeyNotSupported("fake", k)
	}
	if f.failing[k] {
		return inputerr.Failed("fake", op, errors.New("device gone"))
	}
	f.calls = append(f.calls, op+" "+k.String())
	return nil
}

func (f *fakeBackend) PressKey(k keys.Key) error   { return f.keyCall("press", k) }
func (f *fakeBackend) ReleaseKey(k keys.Key) error { return f.keyCall("release", k) }
func (f *fakeBackend) SendKey(k keys.Key) error    { return f.keyCall("send", k) }

func (f *fakeBackend) PressButton(b keys.Button) error {
	f.calls = append(f.calls, "press "+b.String())
	return nil
}

func (f *fakeBackend) ReleaseButton(b keys.Button) error {
	f.calls = append(f.calls, "release "+b.String())
	return nil
}

func (f *fakeBackend) SendButton(b keys.Button) error {
	if b.Kind == keys.ButtonExtra {
		return inputerr.ButtonNotSupported("fake", b)
	}
	f.calls = append(f.calls, "click "+b.String())
	return nil
}

func (f *fakeBackend) SendChar(c rune) error {
	if c > 0x7f {
		return inputerr.CharNotSupported("fake", c)
	}
	f.calls = append(f.calls, fmt.Sprintf("char %c", c))
	return nil
}

func (f *fakeBackend) SendChars(chars iter.Seq[rune]) error {
	for c := range chars {
		if err := f.SendChar(c); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeBackend) SendString(s string) error {
	return f.SendChars(slices.Values([]rune(s)))
}

func (f *fakeBackend) Close() error {
	f.calls = append(f.calls, "close")
	return f.closeErr
}

type xtestBackend struct {
	fakeBackend
	enabled bool
}

func (x *xtestBackend) UsesXTest() bool { return x.enabled }

func TestForwardsActions(t *testing.T) {
	fb := &fakeBackend{}
	sim := NewWithBackend(fb)

	require.NoError(t, sim.PressKey(keys.A))
	require.NoError(t, sim.ReleaseKey(keys.A))
	require.NoError(t, sim.SendKey(keys.Tab))
	require.NoError(t, sim.PressButton(keys.Left))
	require.NoError(t, sim.ReleaseButton(keys.Left))
	require.NoError(t, sim.SendButton(keys.Right))
	require.NoError(t, sim.SendChar('x'))
	require.NoError(t, sim.SendChars(slices.Values([]rune("yz"))))
	require.NoError(t, sim.SendString("ok"))

	assert.Equal(t, []string{
		"press a", "release a", "send tab",
		"press left", "release left", "click right",
		"char x", "char y", "char z", "char o", "char k",
	}, fb.calls)
	assert.Equal(t, "fake", sim.Backend())
}

func TestErrorsAreWrapped(t *testing.T) {
	fb := &fakeBackend{unsupported: map[keys.Key]bool{keys.F24: true}}
	sim := NewWithBackend(fb)

	err := sim.SendKey(keys.F24)
	require.Error(t, err)

	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "fake", kerr.Backend)
	assert.Equal(t, KindUnsupportedKey, kerr.Kind())
	assert.Equal(t, keys.F24, kerr.Key())
	assert.ErrorIs(t, err, ErrUnsupportedKey)
	assert.Equal(t, `keysim: fake: unsupported key "f24"`, err.Error())

	err = sim.SendString("aé")
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, KindUnsupportedChar, kerr.Kind())
	assert.Equal(t, 'é', kerr.Char())

	err = sim.SendButton(keys.Extra(4))
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, keys.Extra(4), kerr.Button())
}

func TestSimulatorUsableAfterFailure(t *testing.T) {
	fb := &fakeBackend{unsupported: map[keys.Key]bool{keys.F24: true}}
	sim := NewWithBackend(fb)

	require.Error(t, sim.SendKey(keys.F24))
	require.NoError(t, sim.SendKey(keys.F1))
	assert.Equal(t, []string{"send f1"}, fb.calls)
}

func TestSendChord(t *testing.T) {
	fb := &fakeBackend{}
	sim := NewWithBackend(fb)

	require.NoError(t, sim.SendChord(keys.Control|keys.Shift, keys.T))
	assert.Equal(t, []string{
		"press leftcontrol",
		"press leftshift",
		"send t",
		"release leftshift",
		"release leftcontrol",
	}, fb.calls)
}

func TestSendChordReleasesModifiersOnFailure(t *testing.T) {
	fb := &fakeBackend{failing: map[keys.Key]bool{keys.MediaStop: true}}
	sim := NewWithBackend(fb)

	err := sim.SendChord(keys.Alt, keys.MediaStop)
	require.ErrorIs(t, err, ErrUnexpected)
	assert.Equal(t, []string{"press leftalt", "release leftalt"}, fb.calls)

	fb.calls = nil
	fb.failing = map[keys.Key]bool{keys.LeftMeta: true}
	err = sim.SendChord(keys.Control|keys.Meta, keys.A)
	require.ErrorIs(t, err, ErrUnexpected)
	assert.Equal(t, []string{"press leftcontrol", "release leftcontrol"}, fb.calls)
}

func TestSendChordUnsupportedKeySendsNothing(t *testing.T) {
	fb := &fakeBackend{unsupported: map[keys.Key]bool{keys.MediaStop: true, keys.LeftMeta: true}}
	sim := NewWithBackend(fb)

	var kerr *Error
	err := sim.SendChord(keys.Alt, keys.MediaStop)
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, keys.MediaStop, kerr.Key())

	err = sim.SendChord(keys.Control|keys.Meta, keys.A)
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, keys.LeftMeta, kerr.Key())
	assert.Empty(t, fb.calls)
}

// recordSink accepts every record and keeps each batch.
type recordSink struct {
	batches [][]winput.Record
}

func (r *recordSink) Submit(records []winput.Record) (int, error) {
	r.batches = append(r.batches, slices.Clone(records))
	return len(records), nil
}

func TestSendChordOnWindowsSubmitsNothingForUnmappedKey(t *testing.T) {
	sink := &recordSink{}
	sim := NewWithBackend(winput.NewWithSink(sink))

	err := sim.SendChord(keys.Control|keys.Shift, keys.NumpadEqual)
	require.ErrorIs(t, err, ErrUnsupportedKey)
	assert.Empty(t, sink.batches)

	require.NoError(t, sim.SendChord(keys.Control, keys.A))
	assert.Len(t, sink.batches, 3, "press, keystroke, release")
}

func TestCloseOnlyOnce(t *testing.T) {
	fb := &fakeBackend{}
	sim := NewWithBackend(fb)

	require.NoError(t, sim.Close())
	err := sim.Close()
	require.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, sim.SendKey(keys.A), ErrClosed)
	assert.ErrorIs(t, sim.SendString("a"), ErrClosed)
	assert.Equal(t, []string{"close"}, fb.calls)
}

func TestCloseError(t *testing.T) {
	fb := &fakeBackend{closeErr: inputerr.Failed("fake", "close", errors.New("busy"))}
	sim := NewWithBackend(fb)

	var kerr *Error
	require.ErrorAs(t, sim.Close(), &kerr)
	assert.Equal(t, KindUnexpected, kerr.Kind())
}

func TestHardwareLevel(t *testing.T) {
	assert.True(t, NewWithBackend(&fakeBackend{}).HardwareLevel())
	assert.True(t, NewWithBackend(&xtestBackend{enabled: true}).HardwareLevel())
	assert.False(t, NewWithBackend(&xtestBackend{enabled: false}).HardwareLevel())
}

func TestPlatformBackend(t *testing.T) {
	tests := []struct {
		goos    string
		session string
		want    string
	}{
		{"windows", "", config.BackendWindows},
		{"windows", "wayland", config.BackendWindows},
		{"linux", "x11", config.BackendX11},
		{"linux", "wayland", config.BackendUinput},
		{"linux", "", config.BackendX11},
		{"linux", "tty", config.BackendX11},
		{"freebsd", "", config.BackendX11},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.session, func(t *testing.T) {
			assert.Equal(t, tt.want, platformBackend(tt.goos, tt.session))
		})
	}
}

func TestSelectBackendHonorsConfig(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.Backend = config.BackendUinput

	got, err := selectBackend(&cfg, "x11")
	require.NoError(t, err)
	assert.Equal(t, config.BackendUinput, got)

	cfg.Backend = "quartz"
	_, err = selectBackend(&cfg, "")
	assert.Error(t, err)
}

func TestNewWithConfigOpenFailure(t *testing.T) {
	cfg := config.DefaultConfig
	cfg.Backend = config.BackendX11
	cfg.X11.Display = ":not-a-display"

	_, err := NewWithConfig(&cfg)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, "x11", kerr.Backend)
	assert.Equal(t, KindOpen, kerr.Kind())
}
