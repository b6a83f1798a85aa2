package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNamesRoundTrip(t *testing.T) {
	seen := make(map[string]Key)
	for _, k := range AllKeys() {
		name := k.String()
		require.NotEmpty(t, name, "key %d has no name", uint8(k))

		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q shared by %d and %d", name, prev, k)
		}
		seen[name] = k

		parsed, err := ParseKey(name)
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Len(t, AllKeys(), int(keyCount))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"A", A},
		{" enter ", Enter},
		{"return", Enter},
		{"ctrl", LeftControl},
		{"F12", F12},
		{"kp7", Numpad7},
		{"0", Zero},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKey("hyper")
	assert.Error(t, err)
}

func TestKeyValid(t *testing.T) {
	assert.True(t, MediaPause.Valid())
	assert.False(t, Key(keyCount).Valid())
	assert.Equal(t, "Key(250)", Key(250).String())
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		in      string
		want    Button
		wantErr bool
	}{
		{in: "left", want: Left},
		{in: "Middle", want: Middle},
		{in: "right", want: Right},
		{in: "extra0", want: Extra(0)},
		{in: "extra12", want: Extra(12)},
		{in: "extra", wantErr: true},
		{in: "extra300", wantErr: true},
		{in: "wheel", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseButton(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParseButton(t, got.String()))
		})
	}
}

func mustParseButton(t *testing.T, s string) Button {
	t.Helper()
	b, err := ParseButton(s)
	require.NoError(t, err)
	return b
}

func TestModifiers(t *testing.T) {
	m, err := ParseModifiers("shift+ctrl")
	require.NoError(t, err)
	assert.Equal(t, Shift|Control, m)
	assert.Equal(t, []Key{LeftControl, LeftShift}, m.Keys())
	assert.Equal(t, "ctrl+shift", m.String())

	m, err = ParseModifiers("")
	require.NoError(t, err)
	assert.Zero(t, m)
	assert.Empty(t, m.Keys())

	_, err = ParseModifiers("ctrl+hyper")
	assert.Error(t, err)
}
