package cmd

import (
	"github.com/bnema/keysim/pkg/keys"
	"github.com/bnema/keysim/pkg/keysim"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Press, release or tap a key",
	Long: `Press, release or tap a key by name.

Run "keysim keys" to list the accepted names.`,
}

var keyPressCmd = &cobra.Command{
	Use:   "press <key>",
	Short: "Press a key and leave it held",
	Args:  cobra.ExactArgs(1),
	RunE: keyAction(func(sim *keysim.Simulator, k keys.Key) error {
		return sim.PressKey(k)
	}),
}

var keyReleaseCmd = &cobra.Command{
	Use:   "release <key>",
	Short: "Release a key",
	Args:  cobra.ExactArgs(1),
	RunE: keyAction(func(sim *keysim.Simulator, k keys.Key) error {
		return sim.ReleaseKey(k)
	}),
}

var keySendCmd = &cobra.Command{
	Use:   "send <key>",
	Short: "Press and release a key",
	Args:  cobra.ExactArgs(1),
	RunE: keyAction(func(sim *keysim.Simulator, k keys.Key) error {
		return sim.SendKey(k)
	}),
}

var chordCmd = &cobra.Command{
	Use:   "chord <modifiers> <key>",
	Short: "Tap a key while holding modifiers",
	Long: `Tap a key while holding modifiers, for example:

  keysim chord ctrl+shift t

Modifiers are joined with "+" and may be shift, ctrl, alt or meta.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mods, err := keys.ParseModifiers(args[0])
		if err != nil {
			return err
		}
		k, err := keys.ParseKey(args[1])
		if err != nil {
			return err
		}
		return withSimulator(func(sim *keysim.Simulator) error {
			return sim.SendChord(mods, k)
		})
	},
}

func init() {
	keyCmd.AddCommand(keyPressCmd)
	keyCmd.AddCommand(keyReleaseCmd)
	keyCmd.AddCommand(keySendCmd)
}

func keyAction(fn func(sim *keysim.Simulator, k keys.Key) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		k, err := keys.ParseKey(args[0])
		if err != nil {
			return err
		}
		return withSimulator(func(sim *keysim.Simulator) error {
			return fn(sim, k)
		})
	}
}
