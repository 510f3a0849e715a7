// Package persistence provides SQLite-based simulation state storage:
// versioned snapshot envelopes plus an append-only event log.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/starhold/internal/engine"
)

// FormatVersion is bumped whenever the snapshot JSON shape changes
// incompatibly. Load refuses mismatched envelopes.
const FormatVersion = 1

// envelope wraps a snapshot for storage.
type envelope struct {
	Version int           `json:"version"`
	SavedAt string        `json:"saved_at"`
	State   *engine.State `json:"state"`
}

// DB wraps a SQLite connection for simulation state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		turn INTEGER PRIMARY KEY,
		version INTEGER NOT NULL,
		saved_at TEXT NOT NULL,
		state_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		turn INTEGER NOT NULL,
		priority TEXT NOT NULL,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		related_json TEXT NOT NULL,
		dismissed INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_turn ON events(turn);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot stores the state under its turn number, replacing any
// previous save for that turn.
func (db *DB) SaveSnapshot(st *engine.State) error {
	env := envelope{
		Version: FormatVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		State:   st,
	}
	blob, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO snapshots (turn, version, saved_at, state_json) VALUES (?, ?, ?, ?)",
		st.Turn, env.Version, env.SavedAt, string(blob),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	if err := db.SaveMeta("last_turn", fmt.Sprintf("%d", st.Turn)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	slog.Info("snapshot saved", "turn", st.Turn, "colonies", len(st.Colonies), "corporations", len(st.Corporations))
	return nil
}

// LoadLatest returns the most recent snapshot, validating the envelope
// version. Returns (nil, nil) when no snapshot exists yet.
func (db *DB) LoadLatest() (*engine.State, error) {
	var blob string
	err := db.conn.Get(&blob, "SELECT state_json FROM snapshots ORDER BY turn DESC LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(blob), &env); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if env.Version != FormatVersion {
		return nil, fmt.Errorf("snapshot format version %d, want %d", env.Version, FormatVersion)
	}
	return env.State, nil
}

// SaveEvents appends a turn's events to the log.
func (db *DB) SaveEvents(events []engine.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		related, _ := json.Marshal(e.RelatedIDs)
		dismissed := 0
		if e.Dismissed {
			dismissed = 1
		}
		_, err := tx.Exec(
			`INSERT OR REPLACE INTO events
			 (id, turn, priority, category, title, description, related_json, dismissed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Turn, e.Priority.String(), e.Category, e.Title, e.Description,
			string(related), dismissed,
		)
		if err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N events, newest first.
func (db *DB) RecentEvents(limit int) ([]engine.Event, error) {
	rows, err := db.conn.Queryx(
		`SELECT id, turn, priority, category, title, description, related_json, dismissed
		 FROM events ORDER BY turn DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []engine.Event
	for rows.Next() {
		var (
			e           engine.Event
			priority    string
			relatedJSON string
			dismissed   int
		)
		if err := rows.Scan(&e.ID, &e.Turn, &priority, &e.Category, &e.Title,
			&e.Description, &relatedJSON, &dismissed); err != nil {
			return nil, err
		}
		e.Priority = parsePriority(priority)
		e.Dismissed = dismissed != 0
		_ = json.Unmarshal([]byte(relatedJSON), &e.RelatedIDs)
		events = append(events, e)
	}
	return events, rows.Err()
}

func parsePriority(s string) engine.Priority {
	switch s {
	case "critical":
		return engine.Critical
	case "warning":
		return engine.Warning
	case "positive":
		return engine.Positive
	}
	return engine.Info
}

// SaveMeta stores a key-value pair in simulation metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
