// Package reportcache stores engine reports in SQLite so repeated inspections
// of an unchanged file skip the analysis. Entries are keyed by path, report
// format and backend, and are valid only while the file's size and
// modification time match.
package reportcache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS reports (
		path      TEXT    NOT NULL,
		format    TEXT    NOT NULL,
		backend   TEXT    NOT NULL,
		size      INTEGER NOT NULL,
		modTime   INTEGER NOT NULL,
		report    TEXT    NOT NULL,
		createdAt INTEGER NOT NULL,
		PRIMARY KEY (path, format, backend)
	);
`

// Key identifies one cached report.
type Key struct {
	Path    string // absolute path of the inspected file
	Format  string // value of the engine's "Output" option, "" for text
	Backend string
	Size    int64
	ModTime time.Time
}

// KeyFor stats path and returns its cache key.
func KeyFor(path, format, backend string) (Key, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Key{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return Key{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Key{
		Path:    abs,
		Format:  format,
		Backend: backend,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}, nil
}

// Cache is a report store backed by one SQLite database.
type Cache struct {
	db *sql.DB
}

// DefaultPath returns the cache location under the user cache directory.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "go-mediainfo", "reports.sqlite")
}

// Open opens or creates the cache at path. ":memory:" gives a private
// in-memory cache.
func Open(path string) (*Cache, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	// One connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the report stored for k. ok is false when there is no entry or
// the entry was recorded for a different size or modification time.
func (c *Cache) Get(k Key) (report string, ok bool, err error) {
	var size, modTime int64
	row := c.db.QueryRow(`
		SELECT size, modTime, report
		FROM reports
		WHERE path = ? AND format = ? AND backend = ?
	`, k.Path, k.Format, k.Backend)
	if err := row.Scan(&size, &modTime, &report); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("scan report: %w", err)
	}
	if size != k.Size || modTime != k.ModTime.UnixNano() {
		return "", false, nil
	}
	return report, true, nil
}

// Put stores report for k, replacing any previous entry.
func (c *Cache) Put(k Key, report string) error {
	_, err := c.db.Exec(`
		INSERT INTO reports (path, format, backend, size, modTime, report, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (path, format, backend) DO UPDATE SET
			size = excluded.size,
			modTime = excluded.modTime,
			report = excluded.report,
			createdAt = excluded.createdAt
	`, k.Path, k.Format, k.Backend, k.Size, k.ModTime.UnixNano(), report, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("store report: %w", err)
	}
	return nil
}

// Prune removes entries whose file no longer exists or has changed. It
// returns the number of entries removed.
func (c *Cache) Prune() (int, error) {
	rows, err := c.db.Query(`SELECT path, format, backend, size, modTime FROM reports`)
	if err != nil {
		return 0, fmt.Errorf("query reports: %w", err)
	}
	var stale []Key
	for rows.Next() {
		var k Key
		var modTime int64
		if err := rows.Scan(&k.Path, &k.Format, &k.Backend, &k.Size, &modTime); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan report: %w", err)
		}
		fi, err := os.Stat(k.Path)
		if err != nil || fi.Size() != k.Size || fi.ModTime().UnixNano() != modTime {
			stale = append(stale, k)
		}
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return 0, fmt.Errorf("iterate reports: %w", err)
	}

	for _, k := range stale {
		if _, err := c.db.Exec(`DELETE FROM reports WHERE path = ? AND format = ? AND backend = ?`,
			k.Path, k.Format, k.Backend); err != nil {
			return 0, fmt.Errorf("delete report: %w", err)
		}
	}
	return len(stale), nil
}
