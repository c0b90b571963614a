package session

// encode.go - categorical-to-numeric encodings. Missing cells stay
// missing under label and ordinal encoding and contribute no indicator
// under one-hot.

import (
	"fmt"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/dataset"
)

// EncodingMethod enumerates the supported categorical encodings.
type EncodingMethod int

const (
	// EncodeLabel assigns each distinct value an integer code. The
	// only contract is a bijection between distinct values and codes
	// within one call; codes are not stable across calls.
	EncodeLabel EncodingMethod = iota
	// EncodeOneHot replaces the column with one 0/1 indicator column
	// per distinct value, named <column>_<value>.
	EncodeOneHot
	// EncodeOrdinal assigns codes 0..k-1 by ascending lexical order
	// of the distinct values, deterministically.
	EncodeOrdinal
)

// String returns the wire name of the method.
func (m EncodingMethod) String() string {
	switch m {
	case EncodeLabel:
		return "label"
	case EncodeOneHot:
		return "one-hot"
	case EncodeOrdinal:
		return "ordinal"
	default:
		return fmt.Sprintf("EncodingMethod(%d)", int(m))
	}
}

// ParseEncodingMethod parses a wire name into an EncodingMethod.
func ParseEncodingMethod(s string) (EncodingMethod, error) {
	switch s {
	case "label":
		return EncodeLabel, nil
	case "one-hot":
		return EncodeOneHot, nil
	case "ordinal":
		return EncodeOrdinal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// ApplyEncoding encodes the named categorical column with the given
// method, mutating the dataset in place.
func (s *Session) ApplyEncoding(column string, method EncodingMethod) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		return Result{}, ErrNoDataset
	}
	col, ok := s.ds.Column(column)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}

	switch method {
	case EncodeLabel:
		codes := make(map[string]int64)
		for i, v := range col.Values {
			if v == nil {
				continue
			}
			text := dataset.FormatValue(v)
			code, seen := codes[text]
			if !seen {
				code = int64(len(codes))
				codes[text] = code
			}
			col.Values[i] = code
		}
		col.Type = dataset.TypeInt
		return Result{
			Message:  fmt.Sprintf("Applied label encoding to %q (%d distinct values).", column, len(codes)),
			Affected: len(codes),
		}, nil

	case EncodeOrdinal:
		values := col.DistinctValues()
		codes := make(map[string]int64, len(values))
		for i, v := range values {
			codes[v] = int64(i)
		}
		for i, v := range col.Values {
			if v == nil {
				continue
			}
			col.Values[i] = codes[dataset.FormatValue(v)]
		}
		col.Type = dataset.TypeInt
		return Result{
			Message:  fmt.Sprintf("Applied ordinal encoding to %q (%d distinct values).", column, len(values)),
			Affected: len(values),
		}, nil

	case EncodeOneHot:
		values := col.DistinctValues()
		rows := s.ds.Rows()
		for _, val := range values {
			indicator := &dataset.Column{
				Name:   column + "_" + val,
				Type:   dataset.TypeInt,
				Values: make([]any, rows),
			}
			for i, v := range col.Values {
				if v != nil && dataset.FormatValue(v) == val {
					indicator.Values[i] = int64(1)
				} else {
					indicator.Values[i] = int64(0)
				}
			}
			s.ds.AppendColumn(indicator)
		}
		if err := s.ds.DropColumn(column); err != nil {
			return Result{}, err
		}
		return Result{
			Message:  fmt.Sprintf("Applied one-hot encoding to %q, created %d new columns.", column, len(values)),
			Affected: len(values),
		}, nil

	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
}
