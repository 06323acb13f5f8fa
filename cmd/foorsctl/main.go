// Command foorsctl drives a foors daemon: starting one, placing and
// removing nodes, sending triage reports, and reading back status.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.ColorProfile())
	}

	root := &cobra.Command{
		Use:           "foorsctl",
		Short:         "Drive a FOORS+ routing simulation daemon",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().String("socket", defaultSocketPath(), "daemon unix socket path")

	root.AddCommand(runCmd())
	root.AddCommand(nodeCmd())
	root.AddCommand(sendCmd())
	root.AddCommand(statusCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMsg("%s", err))
		os.Exit(1)
	}
}

func defaultSocketPath() string {
	return "/tmp/foorsd.sock"
}
