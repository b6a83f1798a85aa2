package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/keysim/internal/config"
	"github.com/bnema/keysim/pkg/keysim"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the selected backend",
	Long: `Open the backend keysim would use and report what it can do.

An event is hardware level when applications cannot tell it apart from
real input. X11 without XTEST only reaches the focused window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSimulator(func(sim *keysim.Simulator) error {
			out := cmd.OutOrStdout()
			session := os.Getenv("XDG_SESSION_TYPE")
			if session == "" {
				session = "unknown"
			}
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Backend:"), sim.Backend())
			fmt.Fprintf(out, "%s %v\n", titleStyle.Render("Hardware level:"), sim.HardwareLevel())
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Session:"), session)
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Config:"), config.GetConfigPath())
			return nil
		})
	},
}
