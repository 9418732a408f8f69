// Package config loads and persists the daemon configuration.
//
// Configuration lives in a YAML file in the OS-appropriate config
// directory. A missing file is not an error: defaults are returned
// so the daemon runs out of the box with the console driver.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "ledpanel"
	configFile = "config.yaml"
)

// Driver selection values for Config.Driver.
const (
	DriverSPI     = "spi"
	DriverConsole = "console"
	DriverPreview = "preview"
	DriverNone    = "none"
)

// WiFi holds the network credentials handed to the connectivity layer.
// Both fields empty means the host network is assumed to be managed
// elsewhere and the daemon only waits for an address.
type WiFi struct {
	SSID       string `yaml:"ssid,omitempty"`
	Passphrase string `yaml:"passphrase,omitempty"`
}

// Config is the daemon configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Listen is the control listener address, e.g. ":80".
	Listen string `yaml:"listen"`

	// ReadTimeout bounds, in seconds, how long a connected client may
	// stay silent before the connection is dropped.
	ReadTimeout int `yaml:"read_timeout"`

	// Driver selects the display sink: spi, console, preview or none.
	Driver string `yaml:"driver"`

	// SPIPort names the spidev port ("" picks the first available).
	SPIPort string `yaml:"spi_port,omitempty"`

	// Serpentine is set when odd panel rows are wired right to left.
	Serpentine bool `yaml:"serpentine,omitempty"`

	// Color is the lit-cell color as rrggbb hex.
	Color string `yaml:"color,omitempty"`

	// PreviewAddr is the listen address of the browser preview.
	PreviewAddr string `yaml:"preview_addr,omitempty"`

	WiFi WiFi `yaml:"wifi,omitempty"`

	// MDNS controls whether the panel announces itself on the local
	// network.
	MDNS bool `yaml:"mdns"`

	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:     1,
		Listen:      ":80",
		ReadTimeout: 5,
		Driver:      DriverConsole,
		Color:       "403020",
		PreviewAddr: ":8080",
		MDNS:        true,
	}
}

// GetConfigDir returns the OS-appropriate configuration directory.
//   - Linux/macOS: $XDG_CONFIG_HOME/ledpanel or $HOME/.config/ledpanel
//   - Windows: %LOCALAPPDATA%\ledpanel
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine config directory: LOCALAPPDATA and USERPROFILE unset")
			}
			localAppData = filepath.Join(userProfile, "AppData", "Local")
		}
		baseDir = filepath.Join(localAppData, appName)
	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads configuration from path. An empty path uses the default
// location. A missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", cfg.Version)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverSPI, DriverConsole, DriverPreview, DriverNone:
	default:
		return fmt.Errorf("unknown driver %q (want spi, console, preview or none)", c.Driver)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive, got %d", c.ReadTimeout)
	}
	return nil
}

// Save writes the configuration atomically to its default location.
func (c *Config) Save() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# ledpanel configuration file\n# Location: " + configPath + "\n\n")
	data = append(header, data...)

	// Write to a temporary file first, then rename into place.
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}
