package session

// clean.go - missing-data strategies. Fill strategies that produce a
// non-integral value promote int columns to float first, so a mean
// fill never truncates.

import (
	"fmt"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/dataset"
)

// TargetAllNumeric is the sentinel target applying a fill strategy to
// every numeric column.
const TargetAllNumeric = "ALL_NUMERIC"

// CleanStrategy enumerates the supported missing-data strategies.
type CleanStrategy int

const (
	// DropRows removes every row with at least one missing value.
	DropRows CleanStrategy = iota
	// DropColumns removes every column with at least one missing value.
	DropColumns
	// DropSpecific removes exactly the named target column.
	DropSpecific
	// FillMean replaces missing cells with the column mean.
	FillMean
	// FillZero replaces missing cells with zero.
	FillZero
	// FillMode replaces missing cells with the most frequent value,
	// ties broken by ascending lexical order.
	FillMode
)

// String returns the wire name of the strategy.
func (cs CleanStrategy) String() string {
	switch cs {
	case DropRows:
		return "drop_rows"
	case DropColumns:
		return "drop_cols"
	case DropSpecific:
		return "drop_specific"
	case FillMean:
		return "fill_mean"
	case FillZero:
		return "fill_zero"
	case FillMode:
		return "fill_mode"
	default:
		return fmt.Sprintf("CleanStrategy(%d)", int(cs))
	}
}

// ParseCleanStrategy parses a wire name into a CleanStrategy.
func ParseCleanStrategy(s string) (CleanStrategy, error) {
	switch s {
	case "drop_rows":
		return DropRows, nil
	case "drop_cols":
		return DropColumns, nil
	case "drop_specific":
		return DropSpecific, nil
	case "fill_mean":
		return FillMean, nil
	case "fill_zero":
		return FillZero, nil
	case "fill_mode":
		return FillMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// CleanMissing applies a missing-data strategy. target names a column
// for the targeted strategies, or TargetAllNumeric to apply a fill to
// every numeric column.
func (s *Session) CleanMissing(strategy CleanStrategy, target string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return Result{}, ErrNoDataset
	}

	switch strategy {
	case DropRows:
		removed := s.ds.DropMissingRows()
		return Result{
			Message:  fmt.Sprintf("Dropped %d rows with missing values.", removed),
			Affected: removed,
		}, nil

	case DropColumns:
		removed := s.ds.DropMissingColumns()
		return Result{
			Message:  fmt.Sprintf("Dropped %d columns with missing values.", removed),
			Affected: removed,
		}, nil

	case DropSpecific:
		if err := s.ds.DropColumn(target); err != nil {
			return Result{}, err
		}
		return Result{
			Message:  fmt.Sprintf("Dropped column %q.", target),
			Affected: 1,
		}, nil

	case FillMean:
		filled, err := s.fillNumeric(target, fillWithMean)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Message:  fmt.Sprintf("Filled %d missing cells with column means.", filled),
			Affected: filled,
		}, nil

	case FillZero:
		filled, err := s.fillNumeric(target, fillWithZero)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Message:  fmt.Sprintf("Filled %d missing cells with zero.", filled),
			Affected: filled,
		}, nil

	case FillMode:
		filled, err := s.fillMode(target)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Message:  fmt.Sprintf("Filled %d missing cells with column modes.", filled),
			Affected: filled,
		}, nil

	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
}

// fillNumeric applies fill to the named numeric column, or to every
// numeric column for TargetAllNumeric. A named non-numeric column is
// an ErrTypeMismatch.
func (s *Session) fillNumeric(target string, fill func(*dataset.Column) int) (int, error) {
	if target == TargetAllNumeric {
		filled := 0
		for _, c := range s.ds.Columns {
			if c.Type.Numeric() {
				filled += fill(c)
			}
		}
		return filled, nil
	}

	col, ok := s.ds.Column(target)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, target)
	}
	if !col.Type.Numeric() {
		return 0, fmt.Errorf("%w: %s", ErrTypeMismatch, target)
	}
	return fill(col), nil
}

func fillWithMean(c *dataset.Column) int {
	mean, ok := c.Mean()
	if !ok {
		return 0
	}
	if c.Type == dataset.TypeInt {
		promoteToFloat(c)
	}
	return c.FillMissing(mean)
}

func fillWithZero(c *dataset.Column) int {
	if c.Type == dataset.TypeInt {
		return c.FillMissing(int64(0))
	}
	return c.FillMissing(float64(0))
}

// fillMode fills missing cells with the column's most frequent value.
// It applies to columns of any type; mode of a column with no present
// values is a no-op.
func (s *Session) fillMode(target string) (int, error) {
	if target == TargetAllNumeric {
		filled := 0
		for _, c := range s.ds.Columns {
			if !c.Type.Numeric() {
				continue
			}
			if mode, ok := c.Mode(); ok {
				filled += c.FillMissing(mode)
			}
		}
		return filled, nil
	}

	col, ok := s.ds.Column(target)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, target)
	}
	mode, ok := col.Mode()
	if !ok {
		return 0, nil
	}
	return col.FillMissing(mode), nil
}

// promoteToFloat converts an int column to float in place.
func promoteToFloat(c *dataset.Column) {
	for i, v := range c.Values {
		if n, ok := v.(int64); ok {
			c.Values[i] = float64(n)
		}
	}
	c.Type = dataset.TypeFloat
}
