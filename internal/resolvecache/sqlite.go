package resolvecache

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cinesift/internal/services"
)

const schema = `
CREATE TABLE IF NOT EXISTS resolution_cache (
    key         TEXT PRIMARY KEY,
    payload     BLOB NOT NULL,
    created_at  INTEGER NOT NULL,
    ttl_seconds INTEGER NOT NULL
)`

// SQLite is a persistent Store backed by a single database file. A
// file lock serializes access across processes; within a process the
// database handle is safe for concurrent use.
type SQLite struct {
	db   *sql.DB
	lock *flock.Flock
	path string
	now  func() time.Time
}

// OpenSQLite initializes or connects to the cache database at path,
// creating parent directories as needed.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, services.Wrap(services.ErrCache, "cache", "open", "create cache directory", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrCache, "cache", "open", "acquire cache lock", err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrCache, "cache", "open", "cache database is locked by another process", nil)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, services.Wrap(services.ErrCache, "cache", "open", "open sqlite db", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, services.Wrap(services.ErrCache, "cache", "open", "apply pragma", execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, services.Wrap(services.ErrCache, "cache", "open", "create schema", err)
	}

	return &SQLite{db: db, lock: lock, path: path, now: time.Now}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	var createdAt, ttlSeconds int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, created_at, ttl_seconds FROM resolution_cache WHERE key = ?`, key,
	).Scan(&payload, &createdAt, &ttlSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, services.Wrap(services.ErrCache, "cache", "get", "query cache entry", err)
	}

	expires := time.Unix(createdAt, 0).Add(time.Duration(ttlSeconds) * time.Second)
	if s.now().After(expires) {
		// Lazy expiry; a delete failure still reads as a miss.
		_, _ = s.db.ExecContext(ctx, `DELETE FROM resolution_cache WHERE key = ?`, key)
		return nil, false, nil
	}
	return payload, true, nil
}

func (s *SQLite) Put(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resolution_cache (key, payload, created_at, ttl_seconds)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET
             payload = excluded.payload,
             created_at = excluded.created_at,
             ttl_seconds = excluded.ttl_seconds`,
		key, payload, s.now().Unix(), int64(ttl/time.Second))
	if err != nil {
		return services.Wrap(services.ErrCache, "cache", "put", "store cache entry", err)
	}
	return nil
}

// Len counts the unexpired entries.
func (s *SQLite) Len(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resolution_cache WHERE created_at + ttl_seconds >= ?`,
		s.now().Unix(),
	).Scan(&count)
	if err != nil {
		return 0, services.Wrap(services.ErrCache, "cache", "len", "count cache entries", err)
	}
	return count, nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM resolution_cache`); err != nil {
		return services.Wrap(services.ErrCache, "cache", "clear", "delete cache entries", err)
	}
	return nil
}

// Close releases the database handle and the cross-process lock.
func (s *SQLite) Close() error {
	if s == nil {
		return nil
	}
	err := s.db.Close()
	if unlockErr := s.lock.Unlock(); err == nil {
		err = unlockErr
	}
	return err
}
