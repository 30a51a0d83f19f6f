package analysis

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/monjit-TAM/portfolio-analyser/internal/database"
)

// Repository persists analysis runs to the history database. Payloads are
// msgpack-encoded Result records.
type Repository struct {
	conn *sql.DB
	log  zerolog.Logger
}

// NewRepository creates a run-history repository on the given connection.
func NewRepository(conn *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		conn: conn,
		log:  log.With().Str("component", "analysis_repository").Logger(),
	}
}

// Init creates the run-history schema if it does not exist.
func (r *Repository) Init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS analysis_runs (
		id            TEXT PRIMARY KEY,
		created_at    TEXT NOT NULL,
		holding_count INTEGER NOT NULL,
		health_score  REAL NOT NULL,
		payload       BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analysis_runs_created_at
		ON analysis_runs(created_at);
	`
	if _, err := r.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create analysis_runs schema: %w", err)
	}
	return nil
}

// Save stores one run inside a transaction.
func (r *Repository) Save(run *Run) error {
	payload, err := msgpack.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("failed to encode run payload: %w", err)
	}

	return database.WithTransaction(r.conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO analysis_runs (id, created_at, holding_count, health_score, payload)
			 VALUES (?, ?, ?, ?, ?)`,
			run.ID, run.CreatedAt.UTC().Format(time.RFC3339Nano),
			run.HoldingCount, run.HealthScore, payload,
		)
		if err != nil {
			return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
		}
		return nil
	})
}

// Get retrieves a run by ID. Returns (nil, nil) when the run does not exist.
func (r *Repository) Get(id string) (*Run, error) {
	row := r.conn.QueryRow(
		`SELECT id, created_at, holding_count, health_score, payload
		 FROM analysis_runs WHERE id = ?`, id)

	var run Run
	var createdAt string
	var payload []byte
	if err := row.Scan(&run.ID, &createdAt, &run.HoldingCount, &run.HealthScore, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse run timestamp %q: %w", createdAt, err)
	}
	run.CreatedAt = ts

	if err := msgpack.Unmarshal(payload, &run.Result); err != nil {
		return nil, fmt.Errorf("failed to decode run payload %s: %w", id, err)
	}
	return &run, nil
}

// List returns run summaries, newest first.
func (r *Repository) List(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.conn.Query(
		`SELECT id, created_at, holding_count, health_score
		 FROM analysis_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	summaries := []RunSummary{}
	for rows.Next() {
		var s RunSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &createdAt, &s.HoldingCount, &s.HealthScore); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp %q: %w", createdAt, err)
		}
		s.CreatedAt = ts
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Prune deletes runs created before the cutoff and reports how many went.
func (r *Repository) Prune(before time.Time) (int64, error) {
	res, err := r.conn.Exec(
		`DELETE FROM analysis_runs WHERE created_at < ?`,
		before.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		r.log.Info().Int64("deleted", n).Time("before", before).Msg("Pruned analysis runs")
	}
	return n, nil
}

// Count returns the number of stored runs.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.conn.QueryRow(`SELECT COUNT(*) FROM analysis_runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}
