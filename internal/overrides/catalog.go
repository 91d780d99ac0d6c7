// Package overrides loads user-authored corrections for titles the
// automatic pipeline gets wrong. The catalog is a JSON file keyed by
// normalized title; it is reloaded lazily whenever the file changes.
package overrides

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"cinesift/internal/services"
)

// Catalog serves lookups against a JSON override file.
type Catalog struct {
	path    string
	logger  *slog.Logger
	mu      sync.RWMutex
	loaded  time.Time
	entries map[string]Override
}

// Override pins a parsed title to curated metadata. Matching is by
// normalized title; Aliases let one entry cover alternate spellings.
type Override struct {
	Title   string   `json:"title"`
	Aliases []string `json:"aliases"`
	Year    int      `json:"year"`
	TMDBID  int64    `json:"tmdb_id"`
	// DisplayTitle, when set, replaces the assembled title outright.
	DisplayTitle string `json:"display_title"`
}

// NewCatalog constructs a catalog backed by the provided JSON file.
// An empty path yields a nil catalog, on which Lookup always misses.
func NewCatalog(path string, logger *slog.Logger) *Catalog {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{path: trimmed, logger: logger}
}

// Lookup returns the override registered for title, if any. The title
// is matched case-insensitively after trimming.
func (c *Catalog) Lookup(title string) (Override, bool, error) {
	if c == nil {
		return Override{}, false, nil
	}
	if err := c.ensureLoaded(); err != nil {
		return Override{}, false, err
	}
	key := normalizeKey(title)
	if key == "" {
		return Override{}, false, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok, nil
}

func (c *Catalog) ensureLoaded() error {
	info, err := os.Stat(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return services.Wrap(services.ErrConfiguration, "overrides", "load", "stat override catalog", err)
	}

	c.mu.RLock()
	alreadyLoaded := !c.loaded.IsZero() && c.loaded.Equal(info.ModTime())
	c.mu.RUnlock()
	if alreadyLoaded {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "overrides", "load", "read override catalog", err)
	}

	entries, err := parseCatalog(data)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "overrides", "load", "parse override catalog", err)
	}

	c.mu.Lock()
	c.entries = entries
	c.loaded = info.ModTime()
	c.mu.Unlock()
	c.logger.Info("loaded title overrides", slog.String("path", c.path), slog.Int("count", len(entries)))
	return nil
}

func parseCatalog(data []byte) (map[string]Override, error) {
	data = trimUTF8BOM(data)
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var raw []Override
	// Accept either a bare array or an object with an overrides field.
	if data[0] == '{' {
		var wrapper struct {
			Overrides []Override `json:"overrides"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, err
		}
		raw = wrapper.Overrides
	} else {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	entries := make(map[string]Override, len(raw))
	for _, entry := range raw {
		entry.Title = strings.TrimSpace(entry.Title)
		if key := normalizeKey(entry.Title); key != "" {
			entries[key] = entry
		}
		for _, alias := range entry.Aliases {
			if key := normalizeKey(alias); key != "" {
				entries[key] = entry
			}
		}
	}
	return entries, nil
}

func normalizeKey(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}

func trimUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}
