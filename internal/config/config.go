package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	fileName = "config.yaml"

	DefaultRefreshInterval = 5 * time.Minute
	DefaultLogMaxLines     = 1000
	DefaultBannerFont      = "doh"
	DefaultLogFileName     = "labstatus.log"
)

type Config struct {
	APIURL          string        `yaml:"api_url,omitempty"`
	APIUser         string        `yaml:"api_user,omitempty"`
	APIPass         string        `yaml:"api_pass,omitempty"`
	Webhook         string        `yaml:"webhook,omitempty"`
	RefreshInterval time.Duration `yaml:"refresh_interval,omitempty"`
	LogFile         string        `yaml:"log_file,omitempty"`
	LogMaxLines     int           `yaml:"log_max_lines,omitempty"`
	BannerFont      string        `yaml:"banner_font,omitempty"`
}

// HasCredentials reports whether authenticated calls can be made.
func (c *Config) HasCredentials() bool {
	return c.APIUser != "" && c.APIPass != ""
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is required (set API_URL or api_url in %s)", fileName)
	}
	if err := ValidateURL(c.APIURL); err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if c.Webhook != "" {
		if err := ValidateURL(c.Webhook); err != nil {
			return fmt.Errorf("webhook: %w", err)
		}
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	if c.LogMaxLines <= 0 {
		return fmt.Errorf("log_max_lines must be positive, got %d", c.LogMaxLines)
	}
	return nil
}

// ValidateURL accepts absolute http and https URLs.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an http(s) URL", raw)
	}
	return nil
}

// Load reads <dataDir>/config.yaml, fills defaults and overlays the environment.
// A missing file is not an error.
func Load(dataDir string) (*Config, error) {
	cfg, err := LoadFile(dataDir)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults(dataDir)
	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFile reads only what config.yaml holds, without defaults or the
// environment. Use it when the result is saved back.
func LoadFile(dataDir string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(filepath.Join(dataDir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	// holds the API password
	return os.WriteFile(filepath.Join(dataDir, fileName), data, 0600)
}

func (c *Config) applyDefaults(dataDir string) {
	if c.RefreshInterval == 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
	if c.LogMaxLines == 0 {
		c.LogMaxLines = DefaultLogMaxLines
	}
	if c.BannerFont == "" {
		c.BannerFont = DefaultBannerFont
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(dataDir, DefaultLogFileName)
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	for env, field := range map[string]*string{
		"API_URL":  &c.APIURL,
		"API_USER": &c.APIUser,
		"API_PASS": &c.APIPass,
		"WEBHOOK":  &c.Webhook,
	} {
		if v, ok := lookup(env); ok && v != "" {
			*field = v
		}
	}
}
