package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/muldrow/ledpanel/internal/client"
	"github.com/muldrow/ledpanel/internal/discovery"
	"github.com/muldrow/ledpanel/internal/tui"
)

func panelClient() *client.Client {
	return client.New(panelHost, panelPort)
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the panel state as a text grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := panelClient().State()
		if err != nil {
			return err
		}
		for _, row := range st.States {
			for _, cell := range row {
				if cell {
					fmt.Print("██")
				} else {
					fmt.Print("··")
				}
			}
			fmt.Println()
		}
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <x> <y>",
	Short: "Toggle one cell",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid x %q: %w", args[0], err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid y %q: %w", args[1], err)
		}
		res, err := panelClient().Toggle(x, y)
		if err != nil {
			return err
		}
		state := "off"
		if res.State {
			state = "on"
		}
		fmt.Printf("cell (%d,%d) is now %s\n", res.X, res.Y, state)
		return nil
	},
}

var lightAllCmd = &cobra.Command{
	Use:   "lightall",
	Short: "Turn every cell on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return panelClient().LightAll()
	},
}

var clearAllCmd = &cobra.Command{
	Use:   "clearall",
	Short: "Turn every cell off",
	RunE: func(cmd *cobra.Command, args []string) error {
		return panelClient().ClearAll()
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find panels on the local network via mDNS",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Scanning for panels...")
		panels, err := discovery.NewScanner().Scan(context.Background())
		if err != nil {
			return err
		}
		if len(panels) == 0 {
			fmt.Println("No panels found.")
			return nil
		}
		for _, p := range panels {
			fmt.Printf("  %s\n", p)
		}
		return nil
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal grid view",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("tui requires an interactive terminal")
		}
		p := tea.NewProgram(tui.New(panelClient()))
		_, err := p.Run()
		return err
	},
}
