// Package session implements the transform session: one active
// dataset per user plus the accumulated record of value remappings
// applied to its columns. Every mutating operation edits the dataset
// in place and returns a human-readable summary; failures are
// reported as errors and never panic past the session boundary.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/dataset"
)

// DefaultUniqueLimit caps EnumerateUniqueValues results so the manual
// remap picker stays usable.
const DefaultUniqueLimit = 50

// Result reports the outcome of a mutating operation.
type Result struct {
	// Message is a human-readable summary suitable for display.
	Message string
	// Affected counts rows, columns or cells touched, depending on
	// the operation.
	Affected int
}

// Session holds one active dataset and its mapping records. A session
// is safe for concurrent use; operations serialize on an internal
// mutex. The dataset and mapping records are replaced together,
// atomically, on each Load.
type Session struct {
	mu       sync.Mutex
	logger   *slog.Logger
	ds       *dataset.Dataset
	source   string
	mappings map[string]map[string]string
}

// New creates an empty session.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		logger:   logger,
		mappings: make(map[string]map[string]string),
	}
}

// Load replaces the active dataset with the parsed contents of the
// CSV file at path and resets the mapping records. The prior dataset
// and its records are discarded. name is the display name kept for
// download naming.
func (s *Session) Load(ctx context.Context, path, name string) (Result, error) {
	ds, err := dataset.LoadCSV(ctx, path)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds
	s.source = name
	s.mappings = make(map[string]map[string]string)

	s.logger.Info("dataset loaded", "source", name, "rows", ds.Rows(), "cols", ds.Cols())
	return Result{
		Message:  fmt.Sprintf("Loaded %q: %d rows, %d columns.", name, ds.Rows(), ds.Cols()),
		Affected: ds.Rows(),
	}, nil
}

// HasData reports whether a dataset is loaded.
func (s *Session) HasData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds != nil
}

// Source returns the display name of the loaded dataset.
func (s *Session) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// ColumnNames returns the current column names in order.
func (s *Session) ColumnNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return nil
	}
	return s.ds.ColumnNames()
}

// NumericColumnNames returns the names of numeric columns in order.
func (s *Session) NumericColumnNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return nil
	}
	return s.ds.NumericColumnNames()
}

// Summary profiles the active dataset.
func (s *Session) Summary() (*dataset.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return nil, ErrNoDataset
	}
	return s.ds.Summarize(), nil
}

// Preview returns the column names and the first n rows as text.
func (s *Session) Preview(n int) ([]string, [][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return nil, nil, ErrNoDataset
	}
	if n > s.ds.Rows() {
		n = s.ds.Rows()
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(s.ds.Columns))
		for j, c := range s.ds.Columns {
			row[j] = c.Text(i)
		}
		rows = append(rows, row)
	}
	return s.ds.ColumnNames(), rows, nil
}

// SaveCSV serializes the active dataset to the file at path.
func (s *Session) SaveCSV(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return ErrNoDataset
	}
	return s.ds.SaveCSV(path)
}

// RenameColumn renames a column in place, preserving cell values and
// position. Any mapping record for the old name moves with the
// column, so the audit trail follows renames. Renaming onto an
// existing column name is rejected.
func (s *Session) RenameColumn(oldName, newName string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return Result{}, ErrNoDataset
	}
	if err := s.ds.RenameColumn(oldName, newName); err != nil {
		return Result{}, err
	}
	if rec, ok := s.mappings[oldName]; ok {
		delete(s.mappings, oldName)
		s.mappings[newName] = rec
	}
	return Result{Message: fmt.Sprintf("Renamed %q to %q.", oldName, newName)}, nil
}

// EnumerateUniqueValues returns the sorted distinct non-missing
// values of a column as text. When the column has more than limit
// distinct values the result is empty: the column is unsuitable for a
// manual remap picker, which is not an error. A limit <= 0 uses
// DefaultUniqueLimit.
func (s *Session) EnumerateUniqueValues(column string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return nil, ErrNoDataset
	}
	col, ok := s.ds.Column(column)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	if limit <= 0 {
		limit = DefaultUniqueLimit
	}
	values := col.DistinctValues()
	if len(values) > limit {
		return nil, nil
	}
	return values, nil
}

// ApplyValueMapping rewrites every cell of column whose text
// representation is a key of mapping with the mapped value, leaves
// everything else unchanged, and then reinterprets the column as
// numeric when every cell parses as a number. The mapping merges into
// the column's record: new keys are added, existing keys overwritten.
// An empty mapping is a no-op.
func (s *Session) ApplyValueMapping(column string, mapping map[string]string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return Result{}, ErrNoDataset
	}
	col, ok := s.ds.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}
	if len(mapping) == 0 {
		return Result{Message: "No mapping values provided; dataset unchanged."}, nil
	}

	// Work on text representations, the same domain the mapping keys
	// come from.
	affected := 0
	for i, v := range col.Values {
		if v == nil {
			continue
		}
		text := dataset.FormatValue(v)
		if replacement, ok := mapping[text]; ok {
			col.Values[i] = replacement
			affected++
		} else {
			col.Values[i] = text
		}
	}
	col.Type = dataset.TypeText
	col.CoerceNumeric()

	rec, ok := s.mappings[column]
	if !ok {
		rec = make(map[string]string, len(mapping))
		s.mappings[column] = rec
	}
	for k, v := range mapping {
		rec[k] = v
	}

	s.logger.Debug("applied value mapping", "column", column, "keys", len(mapping), "cells", affected)
	return Result{
		Message:  fmt.Sprintf("Mapped %d cells in %q.", affected, column),
		Affected: affected,
	}, nil
}

// Mappings returns a copy of the cumulative mapping records, keyed by
// column name.
func (s *Session) Mappings() map[string]map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]map[string]string, len(s.mappings))
	for col, rec := range s.mappings {
		cp := make(map[string]string, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out[col] = cp
	}
	return out
}
