package cmd

import (
	"github.com/bnema/keysim/pkg/keys"
	"github.com/bnema/keysim/pkg/keysim"
	"github.com/spf13/cobra"
)

var buttonCmd = &cobra.Command{
	Use:   "button",
	Short: "Press, release or click a mouse button",
	Long: `Press, release or click a mouse button.

Buttons are left, middle, right or extraN for the additional buttons.`,
}

var buttonPressCmd = &cobra.Command{
	Use:   "press <button>",
	Short: "Press a button and leave it held",
	Args:  cobra.ExactArgs(1),
	RunE: buttonAction(func(sim *keysim.Simulator, b keys.Button) error {
		return sim.PressButton(b)
	}),
}

var buttonReleaseCmd = &cobra.Command{
	Use:   "release <button>",
	Short: "Release a button",
	Args:  cobra.ExactArgs(1),
	RunE: buttonAction(func(sim *keysim.Simulator, b keys.Button) error {
		return sim.ReleaseButton(b)
	}),
}

var buttonClickCmd = &cobra.Command{
	Use:   "click <button>",
	Short: "Press and release a button",
	Args:  cobra.ExactArgs(1),
	RunE: buttonAction(func(sim *keysim.Simulator, b keys.Button) error {
		return sim.SendButton(b)
	}),
}

func init() {
	buttonCmd.AddCommand(buttonPressCmd)
	buttonCmd.AddCommand(buttonReleaseCmd)
	buttonCmd.AddCommand(buttonClickCmd)
}

func buttonAction(fn func(sim *keysim.Simulator, b keys.Button) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		b, err := keys.ParseButton(args[0])
		if err != nil {
			return err
		}
		return withSimulator(func(sim *keysim.Simulator) error {
			return fn(sim, b)
		})
	}
}
