package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/picview/pkg/picview"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	OpenBrowser    bool     `yaml:"open_browser"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

type AppConfig struct {
	Verbose bool         `yaml:"verbose"`
	Server  ServerConfig `yaml:"server"`
}

const (
	ConfigFileName = "picview.yaml"
	DefaultAddr    = "127.0.0.1:7878"
)

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{Addr: DefaultAddr},
	}
}

// Load reads picview.yaml from dataDir. Fields the file omits keep their
// defaults.
func Load(dataDir string) (*AppConfig, error) {
	configPath := filepath.Join(dataDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", picview.ErrInvalidConfig, configPath, err)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if err := ValidateOrigins(cfg.Server.AllowedOrigins); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// ValidateOrigins checks that every entry is an origin the CORS middleware
// accepts: an http or https URL with a host and nothing else, optionally
// with a "*." subdomain wildcard. A list holding only "*" allows any origin.
func ValidateOrigins(origins []string) error {
	if len(origins) == 1 && strings.TrimSpace(origins[0]) == "*" {
		return nil
	}
	for _, origin := range origins {
		if !validOrigin(origin) {
			return fmt.Errorf("%w: allowed origin %q is not of the form http(s)://host[:port]", picview.ErrInvalidConfig, origin)
		}
	}
	return nil
}

func validOrigin(origin string) bool {
	origin = strings.TrimSpace(origin)
	if strings.Contains(origin, ",") {
		return false
	}
	if i := strings.Index(origin, "://*."); i != -1 {
		origin = origin[:i+3] + origin[i+5:]
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" || strings.Contains(u.Host, "*") {
		return false
	}
	return u.User == nil && (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == ""
}

// ResolveDataDir picks the application data directory: explicit if set,
// else $PICVIEW_DATA_DIR, else <user config dir>/picview.
func ResolveDataDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if dir := os.Getenv(picview.EnvDataDir); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine data directory (set --data-dir or %s): %w", picview.EnvDataDir, err)
	}
	return filepath.Join(base, picview.AppDirName), nil
}
