// Package discovery announces and finds panels over mDNS.
//
// Panels register as "_http._tcp" services with a "ledpanel-" instance
// prefix; the ctl binary browses the same service type and filters on
// that prefix.
package discovery

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type panels advertise under.
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.").
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for panel discovery.
	DefaultScanTimeout = 10 * time.Second
)

// Announce registers this host's panel on the local network. The
// returned shutdown function deregisters the service.
func Announce(name string, port int) (func(), error) {
	if name == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "panel"
		}
		name = hostname
	}
	server, err := zeroconf.Register(
		InstancePrefix+name,
		ServiceType,
		ServiceDomain,
		port,
		[]string{"path=/"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return server.Shutdown, nil
}

// Scanner handles mDNS panel discovery.
type Scanner struct {
	// Timeout is the maximum time to wait for discovery.
	Timeout time.Duration
}

// NewScanner creates a scanner with default settings.
func NewScanner() *Scanner {
	return &Scanner{Timeout: DefaultScanTimeout}
}

// Scan discovers all panels on the local network.
func (s *Scanner) Scan(ctx context.Context) ([]*Panel, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	panels := make([]*Panel, 0)

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	go func() {
		for entry := range entries {
			if panel := parseServiceEntry(entry); panel != nil {
				panels = append(panels, panel)
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()
	return panels, nil
}

// parseServiceEntry converts a zeroconf service entry to a Panel.
// Returns nil when the entry is not a panel.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Panel {
	name := panelName(entry.Instance)
	if name == "" {
		return nil
	}

	var ip string
	for _, addr := range entry.AddrIPv4 {
		ip = addr.String()
		break
	}
	if ip == "" && len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	port := entry.Port
	if port == 0 {
		port = 80
	}

	return &Panel{
		Name:         name,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         port,
		DiscoveredAt: time.Now(),
	}
}
