package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
	"github.com/msto63/mcalc/foundation/mcl"
	"github.com/msto63/mcalc/foundation/mcl/symtab"
)

// RunStatus is the outcome of an evaluation run
type RunStatus string

const (
	RunStatusOK    RunStatus = "ok"
	RunStatusError RunStatus = "error"
)

// Run is one recorded program evaluation
type Run struct {
	ID           string         `json:"id" yaml:"id"`
	Timestamp    time.Time      `json:"timestamp" yaml:"timestamp"`
	Source       string         `json:"source" yaml:"source"`
	Operators    string         `json:"operators" yaml:"operators"`
	Status       RunStatus      `json:"status" yaml:"status"`
	ErrorCode    string         `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	Statements   int            `json:"statements" yaml:"statements"`
	Duration     time.Duration  `json:"duration" yaml:"duration"`
	Variables    []symtab.Entry `json:"variables" yaml:"variables"`
}

// RunFilter defines criteria for listing runs
type RunFilter struct {
	Status RunStatus
	Since  time.Time
	Limit  int
	Offset int
}

// RunStore defines the interface for run persistence
type RunStore interface {
	Record(ctx context.Context, run *Run) error
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context, filter RunFilter) ([]*Run, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRunStore implements RunStore using SQLite
type SQLiteRunStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteRunConfig holds configuration for SQLite store
type SQLiteRunConfig struct {
	Path string
}

// NewRun builds the record of an evaluation. Exactly one of result and
// evalErr is expected to be non-nil.
func NewRun(source, operators string, result *mcl.Result, evalErr error) *Run {
	run := &Run{
		Source:    source,
		Operators: operators,
		Status:    RunStatusOK,
	}

	if evalErr != nil {
		run.Status = RunStatusError
		run.ErrorCode = mcerror.GetCode(evalErr).String()
		run.ErrorMessage = evalErr.Error()
		return run
	}

	if result != nil {
		run.Statements = result.Statements
		run.Duration = result.Duration
		run.Variables = result.Variables
	}
	return run
}

// NewSQLiteRunStore creates a new SQLite-based run store
func NewSQLiteRunStore(cfg SQLiteRunConfig) (*SQLiteRunStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storeError(err, "failed to create directory", "store.Open").
			WithCode(mcerror.CodeIOError).
			WithDetail("path", dir)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storeError(err, "failed to open database", "store.Open")
	}

	store := &SQLiteRunStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storeError(err, "failed to initialize schema", "store.Open")
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteRunStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp DATETIME NOT NULL,
		source TEXT NOT NULL,
		operators TEXT NOT NULL,
		status TEXT NOT NULL,
		error_code TEXT,
		error_message TEXT,
		statements INTEGER NOT NULL DEFAULT 0,
		duration_ns INTEGER NOT NULL DEFAULT 0,
		variables TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run, assigning ID and timestamp when unset
func (s *SQLiteRunStore) Record(ctx context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}

	variablesJSON, err := json.Marshal(run.Variables)
	if err != nil {
		return storeError(err, "failed to encode variables", "store.Record")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, timestamp, source, operators, status, error_code, error_message, statements, duration_ns, variables)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Timestamp.UTC(), run.Source, run.Operators, run.Status,
		nullString(run.ErrorCode), nullString(run.ErrorMessage),
		run.Statements, int64(run.Duration), string(variablesJSON))
	if err != nil {
		return storeError(err, "failed to insert run", "store.Record").WithDetail("id", run.ID)
	}

	return nil
}

// Get retrieves one run by ID
func (s *SQLiteRunStore) Get(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, source, operators, status, error_code, error_message, statements, duration_ns, variables
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mcerror.Newf("run %s not found", id).
			WithCode(mcerror.CodeNotFound).
			WithOperation("store.Get").
			WithDetail("id", id)
	}
	if err != nil {
		return nil, storeError(err, "failed to read run", "store.Get").WithDetail("id", id)
	}

	return run, nil
}

// List retrieves runs newest first based on filter criteria
func (s *SQLiteRunStore) List(ctx context.Context, filter RunFilter) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, timestamp, source, operators, status, error_code, error_message, statements, duration_ns, variables FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since.UTC())
	}

	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query runs", "store.List")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, storeError(err, "failed to scan run", "store.List")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(err, "failed to iterate runs", "store.List")
	}

	return runs, nil
}

// Prune removes runs older than the given age
func (s *SQLiteRunStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, storeError(err, "failed to prune runs", "store.Prune")
	}
	deleted, _ := result.RowsAffected()

	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var errorCode, errorMessage, variablesJSON sql.NullString
	var durationNS int64

	if err := row.Scan(&run.ID, &run.Timestamp, &run.Source, &run.Operators, &run.Status,
		&errorCode, &errorMessage, &run.Statements, &durationNS, &variablesJSON); err != nil {
		return nil, err
	}

	run.ErrorCode = errorCode.String
	run.ErrorMessage = errorMessage.String
	run.Duration = time.Duration(durationNS)

	if variablesJSON.Valid && variablesJSON.String != "" {
		if err := json.Unmarshal([]byte(variablesJSON.String), &run.Variables); err != nil {
			return nil, err
		}
	}

	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func storeError(err error, message, operation string) *mcerror.Error {
	return mcerror.Wrap(err, message).
		WithCode(mcerror.CodeDatabaseError).
		WithOperation(operation)
}
