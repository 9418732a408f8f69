package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muldrow/ledpanel/internal/config"
	"github.com/muldrow/ledpanel/internal/discovery"
	"github.com/muldrow/ledpanel/internal/grid"
	"github.com/muldrow/ledpanel/internal/logging"
	"github.com/muldrow/ledpanel/internal/netup"
	"github.com/muldrow/ledpanel/internal/render"
	"github.com/muldrow/ledpanel/internal/render/preview"
	"github.com/muldrow/ledpanel/internal/server"
)

var (
	configPath string
	listenAddr string
	driverName string
	spiPort    string
	serpentine bool
	colorHex   string
	logLevel   string
	noMDNS     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the panel control server",
	Long: `Start the panel control server.

Configuration is read from the config file (if present) and overridden
by flags. The server waits for host network connectivity before
listening; if the network does not come up within the retry budget the
server exits without serving.`,
	Example: `  # Serve with the console driver on port 8080
  ledpanel-server serve --listen :8080 --driver console

  # Drive a WS2812 chain on the first SPI port, serpentine wiring
  ledpanel-server serve --driver spi --serpentine

  # Browser preview of the panel alongside the control surface
  ledpanel-server serve --driver preview --log-level debug`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: OS config dir)")
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Control listen address (e.g. :80)")
	serveCmd.Flags().StringVar(&driverName, "driver", "", "Display driver: spi, console, preview or none")
	serveCmd.Flags().StringVar(&spiPort, "spi-port", "", "SPI port name (empty picks the first available)")
	serveCmd.Flags().BoolVar(&serpentine, "serpentine", false, "Odd panel rows are wired right to left")
	serveCmd.Flags().StringVar(&colorHex, "color", "", "Lit-cell color as rrggbb hex")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&noMDNS, "no-mdns", false, "Disable mDNS announcement")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	color, err := render.ParseColor(cfg.Color)
	if err != nil {
		return err
	}

	// Connectivity gates startup: without a routable address the
	// listener never starts.
	waiter := netup.New(cfg.WiFi.SSID, cfg.WiFi.Passphrase)
	addr, err := waiter.Wait(context.Background())
	if err != nil {
		logging.Error("Network never came up, not starting server", zap.Error(err))
		return err
	}

	driver, err := buildDriver(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize display driver: %w", err)
	}

	if cfg.MDNS {
		port := listenPort(cfg.Listen)
		stop, err := discovery.Announce("", port)
		if err != nil {
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			defer stop()
		}
	}

	srv := server.New(&server.Config{
		Listen:      cfg.Listen,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Second,
		Color:       color,
		Addr:        addr.String(),
	}, grid.New(), driver)

	return srv.Start()
}

// applyFlags overrides file configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("listen") {
		cfg.Listen = listenAddr
	}
	if cmd.Flags().Changed("driver") {
		cfg.Driver = driverName
	}
	if cmd.Flags().Changed("spi-port") {
		cfg.SPIPort = spiPort
	}
	if cmd.Flags().Changed("serpentine") {
		cfg.Serpentine = serpentine
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = colorHex
	}
	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("no-mdns") {
		cfg.MDNS = !noMDNS
	}
}

func buildDriver(cfg *config.Config) (render.Driver, error) {
	switch cfg.Driver {
	case config.DriverSPI:
		return render.NewSPI(cfg.SPIPort, cfg.Serpentine)
	case config.DriverConsole:
		return render.NewConsole(os.Stdout), nil
	case config.DriverPreview:
		return preview.New(cfg.PreviewAddr)
	case config.DriverNone:
		return render.Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}

// listenPort extracts the numeric port from a listen address for the
// mDNS record.
func listenPort(listen string) int {
	_, portStr, err := net.SplitHostPort(listen)
	if err != nil {
		return 80
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 80
	}
	return port
}
