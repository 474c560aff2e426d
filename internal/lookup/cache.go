package lookup

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/compele/reservas/pkg/database"
)

// ErrCacheMiss is returned when a key has never been cached.
var ErrCacheMiss = errors.New("lookup not cached")

var migrations = []database.Migration{
	{
		Version: 1,
		Name:    "lookup_cache",
		SQL: `
			CREATE TABLE IF NOT EXISTS lookup_cache (
				key TEXT PRIMARY KEY,
				payload TEXT NOT NULL,
				fetched_at DATETIME NOT NULL
			);
		`,
	},
}

// Cache persists fetched lookup lists so dropdowns render offline and
// repeated screens skip the network.
type Cache struct {
	db *database.DB
}

// NewCache prepares the cache schema on the given database.
func NewCache(db *database.DB) (*Cache, error) {
	if err := db.Migrate(migrations); err != nil {
		return nil, fmt.Errorf("failed to migrate lookup cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get loads the cached payload for key into out and returns when it was
// fetched.
func (c *Cache) Get(key string, out interface{}) (time.Time, error) {
	var payload string
	var fetchedAt time.Time
	err := c.db.QueryRow(
		"SELECT payload, fetched_at FROM lookup_cache WHERE key = ?", key,
	).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrCacheMiss
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read lookup cache: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode cached lookup: %w", err)
	}
	return fetchedAt, nil
}

// Put stores value under key, replacing any previous entry.
func (c *Cache) Put(key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode lookup: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT INTO lookup_cache (key, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		key, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to write lookup cache: %w", err)
	}
	return nil
}

// Delete removes the entry for key. Missing keys are not an error.
func (c *Cache) Delete(key string) error {
	if _, err := c.db.Exec("DELETE FROM lookup_cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete cached lookup: %w", err)
	}
	return nil
}
