// Package config handles configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Backend names accepted by the backend setting.
const (
	BackendAuto    = ""
	BackendX11     = "x11"
	BackendUinput  = "uinput"
	BackendWindows = "windows"
)

// Config represents the application configuration
type Config struct {
	// Backend forces a backend; empty selects one from the platform
	Backend string `mapstructure:"backend"`

	X11     X11Config     `mapstructure:"x11"`
	Uinput  UinputConfig  `mapstructure:"uinput"`
	Typing  TypingConfig  `mapstructure:"typing"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// X11Config contains X11 backend settings
type X11Config struct {
	Display      string `mapstructure:"display"`       // Empty means $DISPLAY
	DisableXTest bool   `mapstructure:"disable_xtest"` // Force window-targeted delivery
}

// UinputConfig contains uinput backend settings
type UinputConfig struct {
	DevicePath string `mapstructure:"device_path"`
	DeviceName string `mapstructure:"device_name"`
}

// TypingConfig contains settings of the type command
type TypingConfig struct {
	DelayMs int `mapstructure:"delay_ms"` // Pause between characters, 0 sends text as one sequence
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Backend: BackendAuto,
		X11: X11Config{
			Display:      "",
			DisableXTest: false,
		},
		Uinput: UinputConfig{
			DevicePath: "/dev/uinput",
			DeviceName: "keysim virtual input",
		},
		Typing: TypingConfig{
			DelayMs: 0,
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("keysim")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "keysim"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	viper.SetEnvPrefix("KEYSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("backend", DefaultConfig.Backend)
	viper.SetDefault("x11.display", DefaultConfig.X11.Display)
	viper.SetDefault("x11.disable_xtest", DefaultConfig.X11.DisableXTest)
	viper.SetDefault("uinput.device_path", DefaultConfig.Uinput.DevicePath)
	viper.SetDefault("uinput.device_name", DefaultConfig.Uinput.DeviceName)
	viper.SetDefault("typing.delay_ms", DefaultConfig.Typing.DelayMs)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configPathOverride != "" && os.IsNotExist(err)) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	loaded := &Config{}
	if err := viper.Unmarshal(loaded); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendX11, BackendUinput, BackendWindows:
	default:
		return fmt.Errorf("invalid backend %q: want one of x11, uinput, windows", c.Backend)
	}
	if c.Typing.DelayMs < 0 {
		return fmt.Errorf("invalid typing.delay_ms %d: must not be negative", c.Typing.DelayMs)
	}
	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		d := DefaultConfig
		return &d
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Update validates c and makes it the current configuration, so that a
// following Save writes it.
func Update(c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	viper.Set("backend", c.Backend)
	viper.Set("x11.display", c.X11.Display)
	viper.Set("x11.disable_xtest", c.X11.DisableXTest)
	viper.Set("uinput.device_path", c.Uinput.DevicePath)
	viper.Set("uinput.device_name", c.Uinput.DeviceName)
	viper.Set("typing.delay_ms", c.Typing.DelayMs)
	viper.Set("logging.log_level", c.Logging.LogLevel)

	updated := *c
	cfg = &updated
	return nil
}

// Save writes the current settings to the config file
func Save() error {
	configPath := GetConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "keysim.toml"
	}
	return filepath.Join(home, ".config", "keysim", "keysim.toml")
}
