package session

import (
	"errors"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/dataset"
)

// Sentinel errors for the operation taxonomy. Column lookups share
// the dataset package's sentinels so callers match one error across
// layers. All of these are recovered at the operation boundary; none
// escape the HTTP or CLI layer as a panic.
var (
	// ErrNoDataset is returned when an operation runs before any
	// dataset has been loaded.
	ErrNoDataset = errors.New("no dataset loaded")

	// ErrUnknownMethod is returned for an unrecognized encoding method.
	ErrUnknownMethod = errors.New("unknown encoding method")

	// ErrUnknownStrategy is returned for an unrecognized cleaning
	// strategy.
	ErrUnknownStrategy = errors.New("unknown cleaning strategy")

	// ErrTypeMismatch is returned when a numeric fill is requested on
	// a non-numeric column.
	ErrTypeMismatch = errors.New("column is not numeric")

	// ErrColumnNotFound aliases the dataset sentinel.
	ErrColumnNotFound = dataset.ErrColumnNotFound

	// ErrColumnExists aliases the dataset sentinel.
	ErrColumnExists = dataset.ErrColumnExists
)
