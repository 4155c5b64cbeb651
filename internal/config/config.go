// Package config loads the survivors CLI configuration from
// ~/.survivors/config.yaml (or $SURVIVORS_HOME) and environment overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gleemora/survivors/internal/loader"
	"github.com/gleemora/survivors/internal/logging"
	"github.com/gleemora/survivors/internal/pagination"
)

// Environment variables that override the config file.
const (
	EnvHome      = "SURVIVORS_HOME"
	EnvEndpoint  = "SURVIVORS_ENDPOINT"
	EnvPageSize  = "SURVIVORS_PAGE_SIZE"
	EnvLogLevel  = "SURVIVORS_LOG_LEVEL"
	EnvLogFormat = "SURVIVORS_LOG_FORMAT"
)

// Output formats for the list command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// ConfigFileName is the name of the config file inside the config directory.
const ConfigFileName = "config.yaml"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes where survivor records are fetched from.
type SourceConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// ViewConfig holds table defaults.
type ViewConfig struct {
	PageSize       int    `yaml:"page_size"`
	Output         string `yaml:"output"`
	ShowLoadErrors bool   `yaml:"show_load_errors"`
}

// New returns a Config populated with defaults.
func New() *Config {
	logFile := ""
	if dir, err := GetConfigDir(); err == nil {
		logFile = filepath.Join(dir, "logs", "survivors.log")
	}

	return &Config{
		Source: SourceConfig{
			Endpoint: loader.DefaultEndpoint,
		},
		View: ViewConfig{
			PageSize: pagination.DefaultPageSize,
			Output:   OutputTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatJSON,
			File:   logFile,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path and the
// environment, then validates it. An empty path means the default config file,
// which may be absent.
func Load(path string) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	if _, statErr := os.Stat(path); statErr == nil {
		if err := ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	} else if explicit || !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", path, statErr)
	}

	cfg.fillDefaults()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults restores defaults for fields left empty by a section overlay.
func (c *Config) fillDefaults() {
	defaults := New()
	if c.Source.Endpoint == "" {
		c.Source.Endpoint = defaults.Source.Endpoint
	}
	if c.View.PageSize == 0 {
		c.View.PageSize = defaults.View.PageSize
	}
	if c.View.Output == "" {
		c.View.Output = defaults.View.Output
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
}

// ApplyEnv applies SURVIVORS_ENDPOINT and SURVIVORS_PAGE_SIZE.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Source.Endpoint = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		size, err := pagination.ParsePageSize(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPageSize, err)
		}
		c.View.PageSize = size
	}
	return nil
}

// Validate checks the config for values the CLI cannot use.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Source.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: source.endpoint %q must be an absolute http(s) URL", ErrInvalidConfig, c.Source.Endpoint)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("%w: source.timeout must not be negative", ErrInvalidConfig)
	}
	if !pagination.IsValidPageSize(c.View.PageSize) {
		return fmt.Errorf("%w: view.page_size: %w", ErrInvalidConfig, pagination.ErrInvalidPageSize)
	}
	switch strings.ToLower(c.View.Output) {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: view.output %q must be table or json", ErrInvalidConfig, c.View.Output)
	}
	return c.Logging.Validate()
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
