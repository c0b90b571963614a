// Package history persists the audit trail of operations applied to
// each session's dataset, backed by SQLite.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// Operation is one applied transform, as recorded for the audit view.
type Operation struct {
	ID        string
	SessionID string
	Kind      string
	Column    string
	Detail    string
	Affected  int
	AppliedAt time.Time
}

// Store records applied operations in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the history database at path, creating it if needed.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record appends one operation to the audit trail. The ID and
// timestamp are assigned here.
func (s *Store) Record(sessionID, kind, column, detail string, affected int) (*Operation, error) {
	op := &Operation{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Kind:      kind,
		Column:    column,
		Detail:    detail,
		Affected:  affected,
		AppliedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO operations (id, session_id, kind, column_name, detail, affected, applied_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		op.ID, op.SessionID, op.Kind, op.Column, op.Detail, op.Affected, op.AppliedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record operation: %w", err)
	}
	return op, nil
}

// BySession returns up to limit operations for a session, newest
// first. A limit <= 0 returns all of them.
func (s *Store) BySession(sessionID string, limit int) ([]Operation, error) {
	query := `SELECT id, session_id, kind, column_name, detail, affected, applied_at
	          FROM operations WHERE session_id = ? ORDER BY applied_at DESC, id`
	args := []any{sessionID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ops []Operation
	for rows.Next() {
		var op Operation
		if err := rows.Scan(&op.ID, &op.SessionID, &op.Kind, &op.Column, &op.Detail, &op.Affected, &op.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operations: %w", err)
	}
	return ops, nil
}
