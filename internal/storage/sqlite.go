// Package storage provides SQLite-based persistence for saved maps and
// session records. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// MapEntry represents a saved map. Data holds the world file YAML.
type MapEntry struct {
	MapID     string
	Name      string
	Data      []byte
	UpdatedAt time.Time
}

// SessionEntry represents one finished play session.
type SessionEntry struct {
	ID        int64
	WorldID   string
	Steps     uint64
	Teleports int
	Duration  int // seconds
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS maps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			map_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_maps_map_id ON maps(map_id);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			world_id TEXT NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			teleports INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_world_id ON sessions(world_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMap stores a map under its id, replacing any previous version.
func (s *Store) SaveMap(mapID, name string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO maps (map_id, name, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(map_id) DO UPDATE SET
		 name = excluded.name, data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		mapID, name, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save map %s: %w", mapID, err)
	}
	return nil
}

// LoadMap retrieves a saved map by id.
func (s *Store) LoadMap(mapID string) (MapEntry, error) {
	var e MapEntry
	var updatedAt any
	err := s.db.QueryRow(
		"SELECT map_id, name, data, updated_at FROM maps WHERE map_id = ?",
		mapID,
	).Scan(&e.MapID, &e.Name, &e.Data, &updatedAt)
	if err == sql.ErrNoRows {
		return e, fmt.Errorf("storage: map %q not found", mapID)
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot load map %s: %w", mapID, err)
	}
	e.UpdatedAt = parseTime(updatedAt)
	return e, nil
}

// ListMaps retrieves all saved maps without their data blobs, ordered by the
// most recently updated first.
func (s *Store) ListMaps() ([]MapEntry, error) {
	rows, err := s.db.Query(
		"SELECT map_id, name, updated_at FROM maps ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query maps: %w", err)
	}
	defer rows.Close()

	var entries []MapEntry
	for rows.Next() {
		var e MapEntry
		var updatedAt any
		if err := rows.Scan(&e.MapID, &e.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteMap removes a saved map.
func (s *Store) DeleteMap(mapID string) error {
	res, err := s.db.Exec("DELETE FROM maps WHERE map_id = ?", mapID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete map %s: %w", mapID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: map %q not found", mapID)
	}
	return nil
}

// RecordSession stores the outcome of one play session.
// Returns the ID of the inserted record.
func (s *Store) RecordSession(worldID string, steps uint64, teleports, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (world_id, steps, teleports, duration_secs) VALUES (?, ?, ?, ?)",
		worldID, steps, teleports, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions retrieves the latest N sessions for the given world.
// An empty worldID matches all worlds.
func (s *Store) RecentSessions(worldID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, world_id, steps, teleports, duration_secs, created_at
		 FROM sessions`
	args := []any{}
	if worldID != "" {
		query += " WHERE world_id = ?"
		args = append(args, worldID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.WorldID, &e.Steps, &e.Teleports, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
