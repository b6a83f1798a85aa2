package cmd

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bnema/keysim/internal/config"
	"github.com/bnema/keysim/internal/logger"
	"github.com/bnema/keysim/pkg/keysim"
	"github.com/spf13/cobra"
)

var (
	typeFromStdin bool
	typeDelay     time.Duration
)

var typeCmd = &cobra.Command{
	Use:   "type [text...]",
	Short: "Type text into the focused window",
	Long: `Type text into the focused window.

Arguments are joined with single spaces. With --stdin the text is read from
standard input instead. Typing stops at the first character the backend
cannot produce.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := typeText(cmd, args)
		if err != nil {
			return err
		}

		delay := time.Duration(config.Get().Typing.DelayMs) * time.Millisecond
		if cmd.Flags().Changed("delay") {
			delay = typeDelay
		}

		return withSimulator(func(sim *keysim.Simulator) error {
			return typeWithDelay(sim, text, delay)
		})
	},
}

func init() {
	typeCmd.Flags().BoolVar(&typeFromStdin, "stdin", false, "read the text from standard input")
	typeCmd.Flags().DurationVar(&typeDelay, "delay", 0, "pause between characters (default from typing.delay_ms)")
}

func typeText(cmd *cobra.Command, args []string) (string, error) {
	if typeFromStdin {
		if len(args) > 0 {
			return "", errors.New("text arguments cannot be combined with --stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", errors.New("nothing to type")
	}
	return strings.Join(args, " "), nil
}

// typeWithDelay sends text as one sequence, or one character at a time when
// a delay is set.
func typeWithDelay(sim *keysim.Simulator, text string, delay time.Duration) error {
	if delay <= 0 {
		return sim.SendString(text)
	}

	logger.Debug("typing with delay", "delay", delay, "chars", len([]rune(text)))
	first := true
	for _, c := range text {
		if !first {
			time.Sleep(delay)
		}
		first = false
		if err := sim.SendChar(c); err != nil {
			return err
		}
	}
	return nil
}
