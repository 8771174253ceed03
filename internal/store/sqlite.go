package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"lumictl/internal/lighting"
	"lumictl/pkg/logging"

	_ "github.com/mattn/go-sqlite3"
)

const colorsBucket = "light_colors"

// SQLite persists colors in a kv_store bucket.
type SQLite struct {
	db     *sql.DB
	bucket string
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLite{db: db, bucket: colorsBucket}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_store (
			bucket TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (bucket, key)
		);
		CREATE INDEX IF NOT EXISTS idx_kv_bucket ON kv_store(bucket);
	`)
	if err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return nil
}

// Seed returns the stored color, treating read errors as a miss.
func (s *SQLite) Seed(light lighting.LightID) (lighting.Color, bool) {
	var raw string
	err := s.db.QueryRow(`
		SELECT value FROM kv_store WHERE bucket = ? AND key = ?
	`, s.bucket, string(light)).Scan(&raw)
	if err == sql.ErrNoRows {
		return lighting.Color{}, false
	}
	if err != nil {
		logging.Warn(subsystem, "Failed to read color for %s: %v", light, err)
		return lighting.Color{}, false
	}

	var c lighting.Color
	if err := json.Unmarshal([]byte(raw), &c); err != nil || !c.Valid() {
		logging.Warn(subsystem, "Ignoring corrupt color for %s", light)
		return lighting.Color{}, false
	}
	return c, true
}

func (s *SQLite) Record(light lighting.LightID, c lighting.Color) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal color: %w", err)
	}
	now := time.Now().UTC().Unix()
	_, err = s.db.Exec(`
		INSERT INTO kv_store (bucket, key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(bucket, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, s.bucket, string(light), string(data), now, now)
	if err != nil {
		return fmt.Errorf("failed to store color: %w", err)
	}
	return nil
}

func (s *SQLite) All() (map[lighting.LightID]lighting.Color, error) {
	rows, err := s.db.Query(`SELECT key, value FROM kv_store WHERE bucket = ?`, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	out := make(map[lighting.LightID]lighting.Color)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		var c lighting.Color
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			continue
		}
		out[lighting.LightID(key)] = c
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
