package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bnema/keysim/internal/config"
	"github.com/bnema/keysim/internal/logger"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	configForce   bool
	configNoInput bool
)

// initAnswers holds the values edited by the config init form.
type initAnswers struct {
	Backend      string
	DisableXTest bool
	DevicePath   string
	DelayMs      string
}

// Both are replaced in tests.
var (
	promptConfig    = runConfigForm
	stdinIsTerminal = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage keysim configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		backend := cfg.Backend
		if backend == config.BackendAuto {
			backend = "auto"
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Config file:\t%s\n", config.GetConfigPath())
		fmt.Fprintf(w, "backend\t%s\n", backend)
		fmt.Fprintf(w, "x11.display\t%s\n", cfg.X11.Display)
		fmt.Fprintf(w, "x11.disable_xtest\t%v\n", cfg.X11.DisableXTest)
		fmt.Fprintf(w, "uinput.device_path\t%s\n", cfg.Uinput.DevicePath)
		fmt.Fprintf(w, "uinput.device_name\t%s\n", cfg.Uinput.DeviceName)
		fmt.Fprintf(w, "typing.delay_ms\t%d\n", cfg.Typing.DelayMs)
		fmt.Fprintf(w, "logging.log_level\t%s\n", cfg.Logging.LogLevel)
		return w.Flush()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the config file",
	Long: `Write the config file.

On a terminal, a form asks for the backend, XTEST use, the uinput device and
the typing delay, starting from the current settings. With --no-input, or
when standard input is not a terminal, the current settings are written as
they are.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigPath()
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
		}

		if !configNoInput && stdinIsTerminal() {
			answers := answersFrom(config.Get())
			if err := promptConfig(&answers); err != nil {
				return err
			}
			updated, err := answers.apply(config.Get())
			if err != nil {
				return err
			}
			if err := config.Update(updated); err != nil {
				return err
			}
		}

		if err := config.Save(); err != nil {
			return err
		}
		logger.Info("configuration saved", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configNoInput, "no-input", false, "write the current settings without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func answersFrom(cfg *config.Config) initAnswers {
	return initAnswers{
		Backend:      cfg.Backend,
		DisableXTest: cfg.X11.DisableXTest,
		DevicePath:   cfg.Uinput.DevicePath,
		DelayMs:      strconv.Itoa(cfg.Typing.DelayMs),
	}
}

// apply returns a copy of cfg with the answers set.
func (a initAnswers) apply(cfg *config.Config) (*config.Config, error) {
	delay, err := parseDelay(a.DelayMs)
	if err != nil {
		return nil, err
	}
	updated := *cfg
	updated.Backend = a.Backend
	updated.X11.DisableXTest = a.DisableXTest
	updated.Uinput.DevicePath = strings.TrimSpace(a.DevicePath)
	updated.Typing.DelayMs = delay
	return &updated, nil
}

func parseDelay(s string) (int, error) {
	delay, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("typing delay must be a whole number of milliseconds")
	}
	if delay < 0 {
		return 0, errors.New("typing delay must not be negative")
	}
	return delay, nil
}

func runConfigForm(a *initAnswers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Input backend").
				Description("auto picks one from the platform and session type").
				Options(
					huh.NewOption("auto", config.BackendAuto),
					huh.NewOption("x11", config.BackendX11),
					huh.NewOption("uinput", config.BackendUinput),
					huh.NewOption("windows", config.BackendWindows),
				).
				Value(&a.Backend),
			huh.NewConfirm().
				Title("Disable XTEST?").
				Description("Send X11 events to the focused window instead of injecting them").
				Value(&a.DisableXTest),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("uinput device path").
				Value(&a.DevicePath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("device path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Typing delay (ms)").
				Description("Pause between characters of the type command, 0 for none").
				Value(&a.DelayMs).
				Validate(func(s string) error {
					_, err := parseDelay(s)
					return err
				}),
		),
	)
	return form.Run()
}
