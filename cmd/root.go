package cmd

import (
	"github.com/bnema/keysim/internal/config"
	"github.com/bnema/keysim/internal/logger"
	"github.com/bnema/keysim/pkg/keysim"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "keysim",
		Short: "keysim - synthesize keyboard and mouse input",
		Long: `keysim presses keys, clicks mouse buttons and types text at the
operating system level, as if a user did it.

On X11 it injects events through the XTEST extension, or sends them to the
focused window when XTEST is missing. Wayland sessions use a uinput virtual
device and Windows uses SendInput.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// openSimulator is replaced in tests.
var openSimulator = keysim.New

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.config/keysim/keysim.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(chordCmd)
	rootCmd.AddCommand(buttonCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}
	if err := config.Init(); err != nil {
		return err
	}

	level := config.Get().Logging.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if level != "" {
		return logger.SetLevel(level)
	}
	return nil
}

// withSimulator opens a simulator, hands it to fn and closes it afterwards.
func withSimulator(fn func(sim *keysim.Simulator) error) error {
	sim, err := openSimulator()
	if err != nil {
		logger.Error("opening input backend failed", "err", err)
		return err
	}
	defer func() {
		if cerr := sim.Close(); cerr != nil {
			logger.Warn("closing simulator failed", "err", cerr)
		}
	}()
	logger.Debug("simulator opened", "backend", sim.Backend())
	return fn(sim)
}
