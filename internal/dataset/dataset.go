// Package dataset provides the in-memory tabular dataset that one
// analysis session operates on: an ordered set of named, typed columns
// sharing a row count. Loading and saving go through load.go and
// save.go; profiling lives in summary.go.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Sentinel errors shared by dataset operations.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrColumnExists   = errors.New("column already exists")
)

// Type is the inferred type of a column.
type Type int

const (
	// TypeInt holds int64 cells.
	TypeInt Type = iota
	// TypeFloat holds float64 cells.
	TypeFloat
	// TypeText holds string cells.
	TypeText
)

// String returns the display name of the type.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int64"
	case TypeFloat:
		return "float64"
	default:
		return "text"
	}
}

// Numeric reports whether the type is int or float.
func (t Type) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// Column is a single named column. Values holds one entry per row:
// int64 for TypeInt, float64 for TypeFloat, string for TypeText, and
// nil for a missing cell regardless of type.
type Column struct {
	Name   string
	Type   Type
	Values []any
}

// Dataset is an ordered collection of columns with a shared row count.
type Dataset struct {
	Columns []*Column
}

// New creates an empty dataset.
func New() *Dataset {
	return &Dataset{}
}

// Rows returns the row count.
func (d *Dataset) Rows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// Cols returns the column count.
func (d *Dataset) Cols() int {
	return len(d.Columns)
}

// Column returns the column with the given name.
func (d *Dataset) Column(name string) (*Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// HasColumn reports whether a column with the given name exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.Column(name)
	return ok
}

// ColumnNames returns the column names in dataset order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// NumericColumnNames returns the names of int and float columns in
// dataset order.
func (d *Dataset) NumericColumnNames() []string {
	var names []string
	for _, c := range d.Columns {
		if c.Type.Numeric() {
			names = append(names, c.Name)
		}
	}
	return names
}

// RenameColumn renames old to new in place, preserving position and
// cell values. Renaming onto an existing column name is rejected.
func (d *Dataset) RenameColumn(oldName, newName string) error {
	col, ok := d.Column(oldName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, oldName)
	}
	if newName != oldName && d.HasColumn(newName) {
		return fmt.Errorf("%w: %s", ErrColumnExists, newName)
	}
	col.Name = newName
	return nil
}

// DropColumn removes the named column.
func (d *Dataset) DropColumn(name string) error {
	for i, c := range d.Columns {
		if c.Name == name {
			d.Columns = append(d.Columns[:i], d.Columns[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

// AppendColumn adds a column after the existing ones.
func (d *Dataset) AppendColumn(c *Column) {
	d.Columns = append(d.Columns, c)
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{Columns: make([]*Column, len(d.Columns))}
	for i, c := range d.Columns {
		cc := &Column{Name: c.Name, Type: c.Type, Values: make([]any, len(c.Values))}
		copy(cc.Values, c.Values)
		out.Columns[i] = cc
	}
	return out
}

// FormatValue renders a cell value as text. Missing cells render as
// the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Text returns the text representation of the cell at row i.
func (c *Column) Text(i int) string {
	return FormatValue(c.Values[i])
}

// MissingCount returns the number of missing cells in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v == nil {
			n++
		}
	}
	return n
}

// DistinctValues returns the distinct non-missing values of the column
// as text, sorted ascending.
func (c *Column) DistinctValues() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		s := FormatValue(v)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// DistinctCount returns the number of distinct non-missing values.
func (c *Column) DistinctCount() int {
	seen := make(map[string]struct{})
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		seen[FormatValue(v)] = struct{}{}
	}
	return len(seen)
}

// CoerceNumeric reinterprets the column as numeric if every
// non-missing cell parses as a number. Cells that all parse as
// integers yield TypeInt; otherwise TypeFloat. If any cell fails to
// parse the column is left unchanged. Returns whether a conversion
// happened.
func (c *Column) CoerceNumeric() bool {
	if c.Type.Numeric() {
		return false
	}
	allInt := true
	present := 0
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		present++
		s := FormatValue(v)
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			allInt = false
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return false
			}
		}
	}
	if present == 0 {
		return false
	}
	for i, v := range c.Values {
		if v == nil {
			continue
		}
		s := FormatValue(v)
		if allInt {
			n, _ := strconv.ParseInt(s, 10, 64)
			c.Values[i] = n
		} else {
			f, _ := strconv.ParseFloat(s, 64)
			c.Values[i] = f
		}
	}
	if allInt {
		c.Type = TypeInt
	} else {
		c.Type = TypeFloat
	}
	return true
}

// Float returns the cell at row i as a float64. The second return is
// false for missing cells and non-numeric text.
func (c *Column) Float(i int) (float64, bool) {
	switch x := c.Values[i].(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
