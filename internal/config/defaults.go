package config

import "cinesift/internal/vocab"

// Default returns the built-in configuration. Every field holds a
// usable value except tmdb.api_key, which must come from the user
// before resolution can run.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		TMDB: TMDBConfig{
			BaseURL:  "https://api.themoviedb.org/3",
			Language: "en-US",
		},
		Titles: TitlesConfig{
			PreferOriginal:      true,
			IncludeSubtitle:     true,
			PreferLocalOriginal: true,
		},
		Vocabulary: vocab.Default(),
		Cache: CacheConfig{
			Enabled:    true,
			Path:       "~/.cache/cinesift/resolutions.db",
			TTLSeconds: 3600,
		},
		Resolution: ResolutionConfig{
			Enabled:     true,
			Concurrency: 4,
		},
		Overrides: OverridesConfig{},
	}
}
