// Package netup gates server startup on network connectivity.
//
// The panel is useless without an address to serve on, so startup
// blocks until the host has a routable address or a bounded number of
// attempts is exhausted. Wi-Fi association itself is delegated to the
// host's network manager; when credentials are configured the join is
// requested through nmcli before polling begins.
package netup

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/muldrow/ledpanel/internal/logging"
)

// Connection retry bounds. Twenty attempts with a fixed delay; if the
// network is not up by then the server never starts.
const (
	DefaultAttempts = 20
	DefaultDelay    = 3 * time.Second
)

// Waiter polls for host connectivity.
type Waiter struct {
	Attempts int
	Delay    time.Duration

	// SSID and Passphrase are handed to the host network manager
	// before polling. Empty SSID skips the join step entirely.
	SSID       string
	Passphrase string
}

// New returns a Waiter with the default retry bounds.
func New(ssid, passphrase string) *Waiter {
	return &Waiter{
		Attempts:   DefaultAttempts,
		Delay:      DefaultDelay,
		SSID:       ssid,
		Passphrase: passphrase,
	}
}

// Wait blocks until the host has a routable address, retrying up to
// Attempts times with a fixed delay. The returned error is fatal to
// the server role.
func (w *Waiter) Wait(ctx context.Context) (netip.Addr, error) {
	if w.SSID != "" {
		if err := w.join(ctx); err != nil {
			// The network may already be associated; polling below
			// decides whether connectivity actually exists.
			logging.Warn("wifi join request failed",
				zap.String("ssid", w.SSID),
				zap.Error(err),
			)
		}
	}

	attempts := w.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		addr, err := LocalAddr()
		if err == nil {
			logging.Info("Network is up",
				zap.String("addr", addr.String()),
				zap.Int("attempt", attempt),
			)
			return addr, nil
		}
		logging.Debug("waiting for network",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return netip.Addr{}, ctx.Err()
		case <-time.After(delay):
		}
	}
	return netip.Addr{}, fmt.Errorf("network not up after %d attempts", attempts)
}

// join asks the host network manager to associate with the configured
// network.
func (w *Waiter) join(ctx context.Context) error {
	args := []string{"dev", "wifi", "connect", w.SSID}
	if w.Passphrase != "" {
		args = append(args, "password", w.Passphrase)
	}
	cmd := exec.CommandContext(ctx, "nmcli", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("nmcli connect %s: %w (%s)", w.SSID, err, out)
	}
	logging.Info("Joined wifi network", zap.String("ssid", w.SSID))
	return nil
}

// LocalAddr returns the first non-loopback unicast IPv4 address of an
// interface that is up.
func LocalAddr() (netip.Addr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("list interfaces: %w", err)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			if ip4 == nil {
				continue
			}
			addr, ok := netip.AddrFromSlice(ip4)
			if !ok || addr.IsLoopback() || addr.IsLinkLocalUnicast() {
				continue
			}
			return addr, nil
		}
	}
	return netip.Addr{}, fmt.Errorf("no routable IPv4 address")
}
