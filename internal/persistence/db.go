// Package persistence records run telemetry to SQLite. It keeps a
// write-only history of per-cycle statistics for later analysis; the
// simulation never reads state back, so this is not save/resume.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/landscape-sim/internal/engine"
)

// DB wraps a SQLite connection for run telemetry.
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
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		cycles INTEGER NOT NULL DEFAULT 0,
		config_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cycle_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		cycle INTEGER NOT NULL,
		population INTEGER NOT NULL,
		total_energy REAL NOT NULL,
		total_resource REAL NOT NULL,
		peak_resource REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cycle_stats_run ON cycle_stats(run_id, cycle);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// CreateRun inserts a new run row and returns its generated ID. The
// config is stored as JSON alongside so a recorded history can be
// traced back to its exact parameters.
func (db *DB) CreateRun(config any) (string, error) {
	body, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	id := uuid.NewString()
	_, err = db.conn.Exec(
		`INSERT INTO runs (id, started_at, config_json) VALUES (?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), string(body),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecordCycle appends one per-cycle stats row for the run.
func (db *DB) RecordCycle(runID string, st engine.Stats) error {
	_, err := db.conn.Exec(
		`INSERT INTO cycle_stats (run_id, cycle, population, total_energy, total_resource, peak_resource)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, st.Cycle, st.Population, st.TotalEnergy, st.TotalResource, st.PeakResource,
	)
	if err != nil {
		return fmt.Errorf("insert cycle %d: %w", st.Cycle, err)
	}
	return nil
}

// FinishRun stamps the run's end time and final cycle count.
func (db *DB) FinishRun(runID string, cycles uint64) error {
	_, err := db.conn.Exec(
		`UPDATE runs SET finished_at = ?, cycles = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), cycles, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", runID, err)
	}
	return nil
}
