package main

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"cinesift/internal/config"
	"cinesift/internal/logging"
	"cinesift/internal/overrides"
	"cinesift/internal/parser"
	"cinesift/internal/resolve"
	"cinesift/internal/resolve/tmdb"
	"cinesift/internal/resolvecache"
	"cinesift/internal/vocab"
)

// commandContext lazily builds the shared dependencies commands need.
// Everything is constructed at most once per invocation.
type commandContext struct {
	configFlag *string

	once      sync.Once
	config    *config.Config
	configErr error

	logger *slog.Logger
	cache  resolvecache.Store
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg

		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: os.Stderr,
		})
		if err != nil {
			c.configErr = err
			return
		}
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) buildParser() (*parser.Parser, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	compiled, err := vocab.Compile(cfg.Vocabulary)
	if err != nil {
		return nil, err
	}
	catalog := overrides.NewCatalog(cfg.Overrides.Path, c.logger)
	strategy := parser.Strategy{
		PreferOriginal:  cfg.Titles.PreferOriginal,
		IncludeSubtitle: cfg.Titles.IncludeSubtitle,
	}
	return parser.New(compiled, strategy, catalog, c.logger), nil
}

// buildEngine returns nil when resolution is disabled. A cache that
// fails to open degrades to in-memory caching rather than failing the
// command.
func (c *commandContext) buildEngine() (*resolve.Engine, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Resolution.Enabled {
		return nil, nil
	}

	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
	if err != nil {
		return nil, err
	}
	return resolve.NewEngine(client, c.openCache(), resolve.Options{
		Strategy: parser.Strategy{
			PreferOriginal:  cfg.Titles.PreferOriginal,
			IncludeSubtitle: cfg.Titles.IncludeSubtitle,
		},
		PreferLocalOriginal: cfg.Titles.PreferLocalOriginal,
		TTL:                 cfg.CacheTTL(),
	}, c.logger), nil
}

func (c *commandContext) openCache() resolvecache.Store {
	if c.cache != nil {
		return c.cache
	}
	cfg := c.config
	if !cfg.Cache.Enabled {
		c.cache = resolvecache.NewMemory()
		return c.cache
	}
	store, err := resolvecache.OpenSQLite(cfg.Cache.Path)
	if err != nil {
		c.logger.Warn("cache unavailable, using in-memory fallback", logging.Error(err))
		c.cache = resolvecache.NewMemory()
		return c.cache
	}
	c.cache = store
	return c.cache
}

func (c *commandContext) closeCache() {
	if c.cache != nil {
		_ = c.cache.Close()
	}
}
