// Ledpanel-ctl talks to a running ledpanel-server over HTTP.
//
// It offers one-shot commands for every control endpoint, mDNS
// discovery of panels on the local network, and an interactive
// terminal grid view.
//
// Usage:
//
//	ledpanel-ctl state --host 192.168.4.16
//	ledpanel-ctl toggle 5 3
//	ledpanel-ctl tui
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

var (
	panelHost string
	panelPort int
)

var rootCmd = &cobra.Command{
	Use:     "ledpanel-ctl",
	Short:   "LED panel control utility",
	Long:    `Command-line control of a ledpanel-server over its HTTP surface.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&panelHost, "host", "127.0.0.1", "Panel host or IP")
	rootCmd.PersistentFlags().IntVar(&panelPort, "port", 80, "Panel control port")

	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(lightAllCmd)
	rootCmd.AddCommand(clearAllCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ledpanel-ctl %s\n", version.Full())
	},
}
