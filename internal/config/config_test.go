package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetState clears viper and package globals between tests.
func resetState(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfg = nil
	configPathOverride = ""
	t.Cleanup(func() {
		viper.Reset()
		cfg = nil
		configPathOverride = ""
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keysim.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		resetState(t)
		t.Setenv("HOME", t.TempDir())
		t.Chdir(t.TempDir())

		require.NoError(t, Init())
		c := Get()
		assert.Equal(t, BackendAuto, c.Backend)
		assert.Equal(t, "/dev/uinput", c.Uinput.DevicePath)
		assert.Equal(t, "keysim virtual input", c.Uinput.DeviceName)
		assert.False(t, c.X11.DisableXTest)
		assert.Zero(t, c.Typing.DelayMs)
	})

	t.Run("reads values from explicit file", func(t *testing.T) {
		resetState(t)
		SetConfigPath(writeConfig(t, `
backend = "x11"

[x11]
display = ":1"
disable_xtest = true

[typing]
delay_ms = 25

[logging]
log_level = "debug"
`))

		require.NoError(t, Init())
		c := Get()
		assert.Equal(t, BackendX11, c.Backend)
		assert.Equal(t, ":1", c.X11.Display)
		assert.True(t, c.X11.DisableXTest)
		assert.Equal(t, 25, c.Typing.DelayMs)
		assert.Equal(t, "debug", c.Logging.LogLevel)
		// Unset sections keep their defaults.
		assert.Equal(t, "/dev/uinput", c.Uinput.DevicePath)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		resetState(t)
		SetConfigPath(writeConfig(t, `backend = "x11"`))
		t.Setenv("KEYSIM_BACKEND", "uinput")
		t.Setenv("KEYSIM_UINPUT_DEVICE_PATH", "/tmp/uinput")

		require.NoError(t, Init())
		assert.Equal(t, BackendUinput, Get().Backend)
		assert.Equal(t, "/tmp/uinput", Get().Uinput.DevicePath)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		resetState(t)
		SetConfigPath(writeConfig(t, `backend = "cocoa"`))

		err := Init()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cocoa")
	})

	t.Run("rejects negative delay", func(t *testing.T) {
		resetState(t)
		SetConfigPath(writeConfig(t, "[typing]\ndelay_ms = -5\n"))
		assert.Error(t, Init())
	})

	t.Run("handles invalid TOML", func(t *testing.T) {
		resetState(t)
		SetConfigPath(writeConfig(t, "[x11\ndisplay = \":0\""))
		assert.Error(t, Init())
	})

	t.Run("missing explicit file falls back to defaults", func(t *testing.T) {
		resetState(t)
		SetConfigPath(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, Init())
		assert.Equal(t, BackendAuto, Get().Backend)
	})
}

func TestGetReturnsCopyOfDefaults(t *testing.T) {
	resetState(t)
	c := Get()
	c.Backend = BackendWindows
	assert.Equal(t, BackendAuto, DefaultConfig.Backend)
}

func TestSave(t *testing.T) {
	resetState(t)
	path := filepath.Join(t.TempDir(), "nested", "keysim.toml")
	SetConfigPath(path)
	require.NoError(t, Init())

	viper.Set("backend", BackendUinput)
	require.NoError(t, Save())
	assert.Equal(t, path, GetConfigPath())

	resetState(t)
	SetConfigPath(path)
	require.NoError(t, Init())
	assert.Equal(t, BackendUinput, Get().Backend)
}

func TestUpdateThenSave(t *testing.T) {
	resetState(t)
	path := filepath.Join(t.TempDir(), "keysim.toml")
	SetConfigPath(path)
	require.NoError(t, Init())

	c := *Get()
	c.Backend = BackendX11
	c.X11.DisableXTest = true
	c.Typing.DelayMs = 15
	require.NoError(t, Update(&c))
	assert.Equal(t, BackendX11, Get().Backend)
	require.NoError(t, Save())

	resetState(t)
	SetConfigPath(path)
	require.NoError(t, Init())
	assert.Equal(t, BackendX11, Get().Backend)
	assert.True(t, Get().X11.DisableXTest)
	assert.Equal(t, 15, Get().Typing.DelayMs)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	resetState(t)
	require.NoError(t, Init())

	c := *Get()
	c.Backend = "wayland"
	require.Error(t, Update(&c))
	assert.Equal(t, BackendAuto, Get().Backend, "current config unchanged")
}
