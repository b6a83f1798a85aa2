package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/keysim/pkg/keys"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

type keyGroup struct {
	title      string
	first, end keys.Key
}

// Ranges follow the declaration order of keys.Key.
var keyGroups = []keyGroup{
	{"Letters", keys.A, keys.F1},
	{"Function", keys.F1, keys.Zero},
	{"Digits", keys.Zero, keys.Escape},
	{"Editing and modifiers", keys.Escape, keys.NumLock},
	{"Keypad", keys.NumLock, keys.VolumeUp},
	{"Media", keys.VolumeUp, keys.MediaPause + 1},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key and button names",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderKeys(cmd.OutOrStdout())
	},
}

func renderKeys(w io.Writer) error {
	var b strings.Builder
	for _, g := range keyGroups {
		names := make([]string, 0, int(g.end-g.first))
		for k := g.first; k < g.end; k++ {
			names = append(names, nameStyle.Render(k.String()))
		}
		writeGroup(&b, g.title, names)
	}

	buttons := []string{
		nameStyle.Render(keys.Left.String()),
		nameStyle.Render(keys.Middle.String()),
		nameStyle.Render(keys.Right.String()),
		nameStyle.Render("extraN") + dimStyle.Render(" (N = 0-255)"),
	}
	writeGroup(&b, "Buttons", buttons)

	writeGroup(&b, "Modifiers", []string{
		nameStyle.Render("shift"),
		nameStyle.Render("ctrl"),
		nameStyle.Render("alt"),
		nameStyle.Render("meta"),
	})

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGroup(b *strings.Builder, title string, names []string) {
	fmt.Fprintln(b, titleStyle.Render(title))
	row := lipgloss.NewStyle().PaddingLeft(2).Width(78)
	fmt.Fprintln(b, row.Render(strings.Join(names, " ")))
}
