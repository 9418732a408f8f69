package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}
	if !strings.Contains(configDir, "ledpanel") {
		t.Errorf("GetConfigDir() = %v, should contain 'ledpanel'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") && os.Getenv("XDG_CONFIG_HOME") == "" {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Listen != ":80" {
		t.Errorf("Default().Listen = %v, want :80", cfg.Listen)
	}
	if cfg.Driver != DriverConsole {
		t.Errorf("Default().Driver = %v, want console", cfg.Driver)
	}
	if cfg.ReadTimeout != 5 {
		t.Errorf("Default().ReadTimeout = %v, want 5", cfg.ReadTimeout)
	}
	if !cfg.MDNS {
		t.Error("Default().MDNS should be true")
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("Default() should validate, got: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != ":80" {
		t.Errorf("missing file should yield defaults, got Listen = %v", cfg.Listen)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `version: 1
listen: ":8080"
driver: none
read_timeout: 2
wifi:
  ssid: workshop
  passphrase: hunter2
`
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("Listen = %v, want :8080", cfg.Listen)
	}
	if cfg.Driver != DriverNone {
		t.Errorf("Driver = %v, want none", cfg.Driver)
	}
	if cfg.ReadTimeout != 2 {
		t.Errorf("ReadTimeout = %v, want 2", cfg.ReadTimeout)
	}
	if cfg.WiFi.SSID != "workshop" {
		t.Errorf("WiFi.SSID = %v, want workshop", cfg.WiFi.SSID)
	}
	// Fields absent from the file keep their defaults.
	if cfg.PreviewAddr != ":8080" {
		t.Errorf("PreviewAddr = %v, want default :8080", cfg.PreviewAddr)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"bad version", "version: 2\n"},
		{"bad driver", "version: 1\ndriver: hologram\n"},
		{"bad timeout", "version: 1\nread_timeout: -1\n"},
		{"not yaml", "{{{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.contents), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should reject this config")
			}
		})
	}
}
