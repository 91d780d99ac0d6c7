package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cinesift/internal/services"
	"cinesift/internal/vocab"
)

//go:embed sample_config.toml
var sampleConfig string

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// TMDBConfig holds settings for the TMDB resolution provider.
type TMDBConfig struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
}

// TitlesConfig controls how display titles are assembled for
// filenames that carry more than one script.
type TitlesConfig struct {
	PreferOriginal      bool `toml:"prefer_original"`
	IncludeSubtitle     bool `toml:"include_subtitle"`
	PreferLocalOriginal bool `toml:"prefer_local_original"`
}

// CacheConfig controls the resolution cache.
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Path       string `toml:"path"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// ResolutionConfig controls external metadata resolution.
type ResolutionConfig struct {
	Enabled     bool `toml:"enabled"`
	Concurrency int  `toml:"concurrency"`
}

// OverridesConfig points at the optional override catalog.
type OverridesConfig struct {
	Path string `toml:"path"`
}

// Config is the root configuration for cinesift.
type Config struct {
	Logging    LoggingConfig    `toml:"logging"`
	TMDB       TMDBConfig       `toml:"tmdb"`
	Titles     TitlesConfig     `toml:"titles"`
	Vocabulary vocab.Technical  `toml:"vocabulary"`
	Cache      CacheConfig      `toml:"cache"`
	Resolution ResolutionConfig `toml:"resolution"`
	Overrides  OverridesConfig  `toml:"overrides"`
}

// CacheTTL returns the configured cache lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// DefaultConfigPath returns the conventional location of the user
// configuration file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "cinesift", "config.toml")
	}
	return filepath.Join(home, ".config", "cinesift", "config.toml")
}

// resolveConfigPath picks the file Load should read. An explicit path
// wins; otherwise a project-local cinesift.toml is preferred over the
// per-user file.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return expandPath(explicit)
	}
	if _, err := os.Stat("cinesift.toml"); err == nil {
		return "cinesift.toml"
	}
	return DefaultConfigPath()
}

// Load locates, parses, and validates a configuration file. It returns
// the configuration, the path that was consulted, and whether a file
// existed there. A missing file is not an error: defaults apply.
func Load(path string) (*Config, string, bool, error) {
	resolved := resolveConfigPath(path)
	cfg := Default()

	data, err := os.ReadFile(resolved)
	exists := err == nil
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, resolved, false, services.Wrap(services.ErrConfiguration, "config", "load", "read config file", err)
	default:
		decoder := toml.NewDecoder(strings.NewReader(string(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			return nil, resolved, true, services.Wrap(services.ErrConfiguration, "config", "load", fmt.Sprintf("parse %s", resolved), err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, resolved, exists, err
	}
	return cfg, resolved, exists, nil
}

// WriteSample writes the annotated sample configuration to path,
// creating parent directories as needed. It refuses to overwrite an
// existing file.
func WriteSample(path string) error {
	expanded := expandPath(path)
	if _, err := os.Stat(expanded); err == nil {
		return services.Wrap(services.ErrInput, "config", "write-sample", fmt.Sprintf("%s already exists", expanded), nil)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "write-sample", "create config directory", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "write-sample", "write sample config", err)
	}
	return nil
}

// expandPath resolves a leading ~ against the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
