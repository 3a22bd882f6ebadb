// Package prefstore persists representation preferences per data file,
// keyed by a content hash, in a SQLite database.
package prefstore

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	// sqlite driver for the preference database.
	_ "modernc.org/sqlite"

	"github.com/leapstack-labs/vizr/internal/view"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store holds saved representation preferences.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the preference database at path and
// runs pending migrations. Use ":memory:" for an in-memory store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("create store directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preference database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping preference database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate() error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Save upserts the preference map for a data file.
func (s *Store) Save(filePath string, prefs map[string]view.Config) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		abs = filePath
	}

	_, err = s.db.Exec(`
		INSERT INTO configs (id, file_hash, file_path, file_name, prefs, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_hash) DO UPDATE SET
			file_path = excluded.file_path,
			prefs = excluded.prefs,
			created_at = excluded.created_at`,
		uuid.New().String(),
		FileHash(filePath),
		abs,
		filepath.Base(filePath),
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Load returns the saved preference map for a data file, or nil when none is
// stored (or the stored payload is unreadable); absence is never an error.
func (s *Store) Load(filePath string) (map[string]view.Config, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT prefs FROM configs WHERE file_hash = ?`,
		FileHash(filePath),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	var prefs map[string]view.Config
	if err := json.Unmarshal([]byte(payload), &prefs); err != nil {
		// A corrupt row behaves like a missing one: the caller reconfigures.
		return nil, nil
	}
	return prefs, nil
}

// Delete removes the saved preferences for a data file. Reports whether a
// row existed.
func (s *Store) Delete(filePath string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM configs WHERE file_hash = ?`, FileHash(filePath))
	if err != nil {
		return false, fmt.Errorf("delete preferences: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Entry describes one saved configuration, annotated with the current state
// of the data file it belongs to.
type Entry struct {
	ID         string
	FileHash   string
	FilePath   string
	FileName   string
	CreatedAt  time.Time
	Prefs      map[string]view.Config
	FileExists bool
	FileSize   int64
}

// List returns all saved configurations, newest first. Rows with corrupt
// payloads are skipped.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, file_hash, file_path, file_name, prefs, created_at
		FROM configs
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload, createdAt string
		if err := rows.Scan(&e.ID, &e.FileHash, &e.FilePath, &e.FileName, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan preference row: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &e.Prefs); err != nil {
			continue
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		if info, err := os.Stat(e.FilePath); err == nil {
			e.FileExists = true
			e.FileSize = info.Size()
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Cleanup deletes entries whose data files no longer exist and returns how
// many were removed.
func (s *Store) Cleanup() (int, error) {
	entries, err := s.List()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.FileExists {
			continue
		}
		if _, err := s.db.Exec(`DELETE FROM configs WHERE id = ?`, e.ID); err != nil {
			return removed, fmt.Errorf("delete stale entry: %w", err)
		}
		removed++
	}
	return removed, nil
}
