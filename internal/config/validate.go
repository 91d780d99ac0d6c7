package config

import (
	"fmt"

	"cinesift/internal/services"
	"cinesift/internal/vocab"
)

// Validate checks that the configuration is internally consistent.
// Validation failures are configuration errors and abort startup.
func (c *Config) Validate() error {
	if err := c.Logging.validate(); err != nil {
		return err
	}
	if err := c.TMDB.validate(); err != nil {
		return err
	}
	if err := c.Cache.validate(); err != nil {
		return err
	}
	if err := c.Resolution.validate(); err != nil {
		return err
	}
	if _, err := vocab.Compile(c.Vocabulary); err != nil {
		return err
	}
	return nil
}

func (l LoggingConfig) validate() error {
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return configError(fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", l.Level))
	}
	switch l.Format {
	case "text", "json":
	default:
		return configError(fmt.Sprintf("logging.format %q is not one of text, json", l.Format))
	}
	return nil
}

// The API key is not validated here: local parsing works without it,
// and the provider client rejects an empty key when resolution is
// actually attempted.
func (t TMDBConfig) validate() error {
	if t.BaseURL == "" {
		return configError("tmdb.base_url must not be empty")
	}
	return nil
}

func (c CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Path == "" {
		return configError("cache.path must be set when the cache is enabled")
	}
	if c.TTLSeconds <= 0 {
		return configError("cache.ttl_seconds must be positive")
	}
	return nil
}

func (r ResolutionConfig) validate() error {
	if r.Concurrency < 1 {
		return configError("resolution.concurrency must be at least 1")
	}
	return nil
}

func configError(message string) error {
	return services.Wrap(services.ErrConfiguration, "config", "validate", message, nil)
}
