package keysim

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bnema/keysim/internal/config"
	"github.com/bnema/keysim/internal/logger"
	"github.com/bnema/keysim/internal/virtual"
	"github.com/bnema/keysim/internal/winput"
	"github.com/bnema/keysim/internal/x11"
)

// sessionTypeEnv names the variable consulted to choose among the linux
// backends.
const sessionTypeEnv = "XDG_SESSION_TYPE"

func lookupSession() string {
	return os.Getenv(sessionTypeEnv)
}

// selectBackend returns the backend to open: the configured one when set,
// the platform default otherwise.
func selectBackend(cfg *config.Config, session string) (string, error) {
	if cfg.Backend != config.BackendAuto {
		if err := cfg.Validate(); err != nil {
			return "", err
		}
		logger.Debug("using configured backend", "backend", cfg.Backend)
		return cfg.Backend, nil
	}
	b := platformBackend(runtime.GOOS, session)
	logger.Debug("selected backend", "backend", b, "os", runtime.GOOS, "session", session)
	return b, nil
}

// platformBackend maps an OS and session type to a backend. An absent or
// unrecognized session type on linux falls back to X11.
func platformBackend(goos, session string) string {
	switch goos {
	case "windows":
		return config.BackendWindows
	case "linux":
		if session == "wayland" {
			return config.BackendUinput
		}
		return config.BackendX11
	default:
		return config.BackendX11
	}
}

func openBackend(name string, cfg *config.Config) (Backend, error) {
	switch name {
	case config.BackendX11:
		return x11.New(x11.Options{
			Display:      cfg.X11.Display,
			DisableXTest: cfg.X11.DisableXTest,
		})
	case config.BackendUinput:
		return virtual.New(virtual.Options{
			DevicePath: cfg.Uinput.DevicePath,
			DeviceName: cfg.Uinput.DeviceName,
		})
	case config.BackendWindows:
		return winput.New()
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

var (
	_ Backend = (*x11.Simulator)(nil)
	_ Backend = (*virtual.Simulator)(nil)
	_ Backend = (*winput.Simulator)(nil)
)
