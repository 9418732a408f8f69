// Ledpanel-server is the control daemon for a 12x8 LED matrix panel.
//
// It mirrors the intended panel state in memory, serves a small raw
// HTTP control surface for reading and mutating that state, and pushes
// a frame to the display driver after every user-visible change.
//
// Usage:
//
//	ledpanel-server serve [flags]
//
// See 'ledpanel-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muldrow/ledpanel/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledpanel-server",
	Short: "LED panel control daemon",
	Long: `A control daemon for a fixed 12x8 binary LED matrix.

The daemon keeps an in-memory mirror of the panel, serves an
unauthenticated HTTP GET surface to read and mutate it, and renders
every change to the configured display driver (SPI chain, console,
or browser preview).

For talking to a running panel, use the separate 'ledpanel-ctl' utility.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ledpanel-server %s\n", version.Full())
	},
}
