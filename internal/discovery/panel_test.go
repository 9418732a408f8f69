package discovery

import (
	"testing"
)

func TestPanel_String(t *testing.T) {
	panel := &Panel{
		Name: "workbench",
		IP:   "192.168.4.16",
		Port: 80,
	}

	expected := "Panel workbench at 192.168.4.16:80"
	if panel.String() != expected {
		t.Errorf("Panel.String() = %v, want %v", panel.String(), expected)
	}
}

func TestPanel_BaseURL(t *testing.T) {
	tests := []struct {
		name     string
		panel    *Panel
		expected string
	}{
		{
			name:     "standard HTTP port",
			panel:    &Panel{IP: "192.168.4.16", Port: 80},
			expected: "http://192.168.4.16:80",
		},
		{
			name:     "custom port",
			panel:    &Panel{IP: "10.0.0.5", Port: 8080},
			expected: "http://10.0.0.5:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.panel.BaseURL(); got != tt.expected {
				t.Errorf("Panel.BaseURL() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPanelName(t *testing.T) {
	tests := []struct {
		instance string
		want     string
	}{
		{"ledpanel-workbench", "workbench"},
		{"ledpanel-living-room", "living-room"},
		{"ledpanel-", ""},
		{"printer-upstairs", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := panelName(tt.instance); got != tt.want {
			t.Errorf("panelName(%q) = %q, want %q", tt.instance, got, tt.want)
		}
	}
}
