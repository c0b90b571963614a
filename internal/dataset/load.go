package dataset

// load.go - CSV loading through DuckDB's CSV reader, which handles
// quoting, encodings and per-column type inference.

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// LoadCSV parses the CSV file at path into an in-memory Dataset.
// Column types are inferred per column: integer, floating-point, or
// text. Any parse failure surfaces as a load error.
func LoadCSV(ctx context.Context, path string) (*Dataset, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("load csv: %w", err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("load csv: open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }()

	// read_csv_auto infers the schema with the header row as names.
	query := fmt.Sprintf(
		"SELECT * FROM read_csv_auto('%s', header=true)",
		strings.ReplaceAll(absPath, "'", "''"),
	)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load csv: %w", err)
	}
	defer func() { _ = rows.Close() }()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("load csv: column types: %w", err)
	}

	ds := New()
	for _, ct := range colTypes {
		ds.AppendColumn(&Column{
			Name: ct.Name(),
			Type: typeFromDuckDB(ct.DatabaseTypeName()),
		})
	}

	for rows.Next() {
		values := make([]any, len(ds.Columns))
		ptrs := make([]any, len(ds.Columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("load csv: scan: %w", err)
		}
		for i, col := range ds.Columns {
			col.Values = append(col.Values, normalizeValue(values[i], col.Type))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load csv: %w", err)
	}

	return ds, nil
}

// typeFromDuckDB maps a DuckDB type name to a dataset type. Anything
// that is not an integer or floating-point type is kept as text.
func typeFromDuckDB(name string) Type {
	switch strings.ToUpper(name) {
	case "TINYINT", "SMALLINT", "INTEGER", "BIGINT", "HUGEINT",
		"UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT":
		return TypeInt
	case "FLOAT", "DOUBLE", "DECIMAL", "REAL":
		return TypeFloat
	default:
		return TypeText
	}
}

// normalizeValue converts a scanned driver value into the canonical
// cell representation for the column type: int64, float64 or string,
// with nil preserved for NULLs.
func normalizeValue(v any, t Type) any {
	if v == nil {
		return nil
	}
	switch t {
	case TypeInt:
		switch x := v.(type) {
		case int64:
			return x
		case int32:
			return int64(x)
		case int16:
			return int64(x)
		case int8:
			return int64(x)
		case int:
			return int64(x)
		case uint64:
			return int64(x)
		case uint32:
			return int64(x)
		case uint16:
			return int64(x)
		case uint8:
			return int64(x)
		case float64:
			return int64(x)
		}
	case TypeFloat:
		switch x := v.(type) {
		case float64:
			return x
		case float32:
			return float64(x)
		case int64:
			return float64(x)
		}
	}
	// Text column, or an unexpected driver type: keep the text form.
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}
