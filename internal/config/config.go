// Package config loads rncourse settings from defaults, an optional YAML
// file, environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings.
type Config struct {
	// BaseURL is the public origin used when rendering absolute URLs.
	BaseURL string `yaml:"base_url"`
	// SolutionPassword gates challenge solutions; empty means ungated.
	SolutionPassword string `yaml:"solution_password"`
	LogCalls         bool   `yaml:"log_calls"`
	// Style is the glamour style used by `show` ("auto", "dark", "light", "notty").
	Style string `yaml:"style"`
	Width int    `yaml:"width"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:3000",
		Style:   "auto",
		Width:   80,
	}
}

// DefaultPath returns the config file location, honouring RNCOURSE_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv("RNCOURSE_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".rncourse", "config.yaml"), nil
}

// Load reads path over the defaults and then applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RNCOURSE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v, ok := os.LookupEnv("RNCOURSE_SOLUTION_PASSWORD"); ok {
		c.SolutionPassword = v
	}
	if v := os.Getenv("RNCOURSE_LOG_CALLS"); v != "" {
		c.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RNCOURSE_STYLE"); v != "" {
		c.Style = v
	}
	if v := os.Getenv("RNCOURSE_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Width = n
		}
	}
}

var validStyles = map[string]bool{"auto": true, "dark": true, "light": true, "notty": true}

// Validate rejects settings the renderers cannot use.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	if !validStyles[c.Style] {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	return nil
}

// BindFlags registers persistent flags that override loaded values. Call
// it before parsing and the flag values win over file and environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.BaseURL, "base-url", c.BaseURL, "Public origin used for absolute URLs")
	fs.BoolVar(&c.LogCalls, "log-calls", c.LogCalls, "Log navigation use cases to stderr")
	fs.StringVar(&c.Style, "style", c.Style, "Markdown style: auto, dark, light or notty")
	fs.IntVar(&c.Width, "width", c.Width, "Wrap width for rendered pages")
}
