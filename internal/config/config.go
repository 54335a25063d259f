// Package config loads roster's configuration from defaults, an optional YAML
// file and environment variables, in that order of precedence (lowest first).
// Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/roster/internal/employee"
)

// Environment variables.
const (
	EnvConfigPath = "ROSTER_CONFIG"
	EnvBaseURL    = "ROSTER_BASE_URL"
	EnvTimeout    = "ROSTER_TIMEOUT_SECONDS"
	EnvLogLevel   = "ROSTER_LOG_LEVEL"
	EnvLogFormat  = "ROSTER_LOG_FORMAT"
	EnvLogFile    = "ROSTER_LOG_FILE"
)

// Defaults.
const (
	DefaultBaseURL         = "https://dummyjson.com"
	DefaultTimeoutSeconds  = 10
	DefaultRetryCount      = 0
	DefaultUserAgent       = "roster"
	DefaultScrollThreshold = 3
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"

	configDirName  = ".roster"
	configFileName = "config.yaml"
	logFileName    = "roster.log"
	configDirPerm  = 0o750
	configFilePerm = 0o600
)

// Validation errors.
var (
	ErrInvalidBaseURL   = errors.New("api.base_url must be an absolute http(s) URL")
	ErrInvalidTimeout   = errors.New("api.timeout_seconds must be > 0")
	ErrInvalidRetry     = errors.New("api.retry_count must be >= 0")
	ErrInvalidThreshold = errors.New("view.scroll_threshold must be >= 0")
	ErrInvalidLogLevel  = errors.New("logging.level is not a valid level")
	ErrNoCountries      = errors.New("view.countries must not be empty")
)

// Config is the full roster configuration.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"`
	View    ViewConfig    `yaml:"view"    json:"view"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// APIConfig configures the listing endpoint client.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"        json:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	// RetryCount is the number of automatic retries per page. Zero keeps the
	// accept-or-discard behavior: a failed page is dropped and retried only
	// by the next scroll or filter change.
	RetryCount int    `yaml:"retry_count"          json:"retry_count"`
	UserAgent  string `yaml:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// Timeout returns the request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// ViewConfig configures the roster page.
type ViewConfig struct {
	Countries   []string `yaml:"countries"    json:"countries"`
	DefaultSort string   `yaml:"default_sort" json:"default_sort"`
	// ScrollThreshold is how many rows before the end of the list the next
	// page is requested.
	ScrollThreshold int `yaml:"scroll_threshold" json:"scroll_threshold"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// New returns a Config populated with defaults.
func New() *Config {
	countries := make([]string, len(employee.DefaultCountries))
	copy(countries, employee.DefaultCountries)

	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
			RetryCount:     DefaultRetryCount,
			UserAgent:      DefaultUserAgent,
		},
		View: ViewConfig{
			Countries:       countries,
			DefaultSort:     employee.DefaultSort().String(),
			ScrollThreshold: DefaultScrollThreshold,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   DefaultLogFile(),
		},
	}
}

// Dir returns ~/.roster, or "" when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, configFileName)
}

// DefaultLogFile returns the default log file location.
func DefaultLogFile() string {
	dir := Dir()
	if dir == "" {
		return filepath.Join(os.TempDir(), logFileName)
	}
	return filepath.Join(dir, logFileName)
}

// Load builds the effective configuration. path may be empty, in which case
// ROSTER_CONFIG and then the default path are tried. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if path == "" {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path = env
			explicit = true
		} else {
			path = DefaultPath()
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				return nil, mergeErr
			}
		} else if explicit {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables found via lookup.
// Unparseable numeric values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.API.TimeoutSeconds = secs
		}
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
}

// Validate checks the configuration for values the client or view cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeout, c.API.TimeoutSeconds)
	}
	if c.API.RetryCount < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRetry, c.API.RetryCount)
	}
	if c.View.ScrollThreshold < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, c.View.ScrollThreshold)
	}
	if len(c.View.Countries) == 0 {
		return ErrNoCountries
	}
	if _, err := c.DefaultSort(); err != nil {
		return fmt.Errorf("view.default_sort: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}

// DefaultSort parses View.DefaultSort ("field" or "field:order").
func (c *Config) DefaultSort() (employee.Sort, error) {
	if c.View.DefaultSort == "" {
		return employee.DefaultSort(), nil
	}
	return employee.ParseSort(c.View.DefaultSort)
}

// Save writes c to path as YAML, creating the directory if needed. The file is
// written to a temporary sibling and renamed into place.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.New("config path is empty")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(path), configDirPerm); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}

	tmpPath := path + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, configFilePerm); writeErr != nil {
		return fmt.Errorf("writing config temp file: %w", writeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming config file: %w", renameErr)
	}
	return nil
}
