package config

import "strings"

// normalize cleans up user-supplied values before validation so that
// equivalent spellings behave identically.
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)

	c.Cache.Path = expandPath(strings.TrimSpace(c.Cache.Path))
	c.Overrides.Path = expandPath(strings.TrimSpace(c.Overrides.Path))
}
