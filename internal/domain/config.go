package domain

import (
	"fmt"
	"time"
)

const (
	DefaultAPIBaseURL     = "https://api.github.com/"
	DefaultTimeout        = 30 * time.Second
	DefaultMaxConcurrency = 8
	DefaultCacheSize      = 64
)

// Config holds tool configuration loaded from .repohealth.yaml and the environment.
// Token is never read from the YAML file.
type Config struct {
	APIBaseURL     string `yaml:"api_base_url"   json:"api_base_url,omitempty"`
	Timeout        string `yaml:"timeout"        json:"timeout,omitempty"`
	MaxConcurrency int    `yaml:"max_concurrency" json:"max_concurrency,omitempty"`
	MinSeverity    string `yaml:"min_severity"   json:"min_severity,omitempty"`
	CacheSize      int    `yaml:"cache_size"     json:"cache_size,omitempty"`
	Token          string `yaml:"-"              json:"-"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:     DefaultAPIBaseURL,
		Timeout:        DefaultTimeout.String(),
		MaxConcurrency: DefaultMaxConcurrency,
		MinSeverity:    string(SeverityInfo),
		CacheSize:      DefaultCacheSize,
	}
}

// WithDefaults fills zero fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.APIBaseURL == "" {
		c.APIBaseURL = d.APIBaseURL
	}
	if c.Timeout == "" {
		c.Timeout = d.Timeout
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = d.MaxConcurrency
	}
	if c.MinSeverity == "" {
		c.MinSeverity = d.MinSeverity
	}
	if c.CacheSize == 0 {
		c.CacheSize = d.CacheSize
	}
	return c
}

// TimeoutDuration parses Timeout, falling back to DefaultTimeout when empty.
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Timeout != "" {
		d, err := c.TimeoutDuration()
		if err != nil {
			return err
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be > 0 (got %s)", c.Timeout)
		}
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must not be negative (got %d)", c.MaxConcurrency)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative (got %d)", c.CacheSize)
	}
	if c.MinSeverity != "" {
		if _, err := ParseSeverity(c.MinSeverity); err != nil {
			return fmt.Errorf("min_severity: %w", err)
		}
	}
	return nil
}
