package resolvecache

import (
	"context"
	"strconv"
	"time"

	"cinesift/internal/textutil"
)

// DefaultTTL bounds how long resolutions stay valid when the
// configuration does not say otherwise.
const DefaultTTL = time.Hour

// Store is the TTL key/value contract the resolution engine consumes.
// Get returns (nil, false, nil) for a missing or expired key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Len(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Close() error
}

// Key derives the cache key for a query. It is a pure function of the
// normalized title and year: identical queries always map to the same
// entry regardless of when or where they run.
func Key(title string, year int) string {
	return textutil.Normalize(title) + ":" + strconv.Itoa(year)
}
