package discovery

import (
	"fmt"
	"strings"
	"time"
)

// InstancePrefix marks panel service instances on the local network,
// e.g. "ledpanel-workbench".
const InstancePrefix = "ledpanel-"

// Panel represents a discovered panel on the network.
type Panel struct {
	// Name is the panel name taken from the service instance, with
	// the prefix stripped (e.g. "workbench").
	Name string

	// Hostname is the mDNS hostname (e.g. "workbench.local.")
	Hostname string

	// IP is the IPv4 address.
	IP string

	// Port is the control surface port (typically 80).
	Port int

	// DiscoveredAt is when the panel was seen.
	DiscoveredAt time.Time
}

// String returns a human-readable description of the panel.
func (p *Panel) String() string {
	return fmt.Sprintf("Panel %s at %s:%d", p.Name, p.IP, p.Port)
}

// BaseURL returns the HTTP base URL for the panel's control surface.
func (p *Panel) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", p.IP, p.Port)
}

// panelName extracts the panel name from a service instance, or ""
// when the instance is not a panel.
func panelName(instance string) string {
	if !strings.HasPrefix(instance, InstancePrefix) {
		return ""
	}
	name := strings.TrimPrefix(instance, InstancePrefix)
	if name == "" {
		return ""
	}
	return name
}
