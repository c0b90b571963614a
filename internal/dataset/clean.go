package dataset

// clean.go - missing-data primitives used by the session's cleaning
// strategies.

import "sort"

// DropMissingRows removes every row containing at least one missing
// value in any column and returns the number of rows removed.
func (d *Dataset) DropMissingRows() int {
	rows := d.Rows()
	keep := make([]bool, rows)
	kept := 0
	for i := 0; i < rows; i++ {
		keep[i] = true
		for _, c := range d.Columns {
			if c.Values[i] == nil {
				keep[i] = false
				break
			}
		}
		if keep[i] {
			kept++
		}
	}
	if kept == rows {
		return 0
	}
	for _, c := range d.Columns {
		filtered := make([]any, 0, kept)
		for i, v := range c.Values {
			if keep[i] {
				filtered = append(filtered, v)
			}
		}
		c.Values = filtered
	}
	return rows - kept
}

// DropMissingColumns removes every column containing at least one
// missing value and returns the number of columns removed.
func (d *Dataset) DropMissingColumns() int {
	var kept []*Column
	for _, c := range d.Columns {
		if c.MissingCount() == 0 {
			kept = append(kept, c)
		}
	}
	removed := len(d.Columns) - len(kept)
	d.Columns = kept
	return removed
}

// FillMissing replaces every missing cell with v and returns the
// number of cells filled. The caller is responsible for passing a
// value matching the column type.
func (c *Column) FillMissing(v any) int {
	filled := 0
	for i, cell := range c.Values {
		if cell == nil {
			c.Values[i] = v
			filled++
		}
	}
	return filled
}

// Mean returns the arithmetic mean of the present values of a numeric
// column. The second return is false for non-numeric columns and
// columns with no present values.
func (c *Column) Mean() (float64, bool) {
	if !c.Type.Numeric() {
		return 0, false
	}
	sum := 0.0
	n := 0
	for i := range c.Values {
		if f, ok := c.Float(i); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Mode returns the most frequent present value of the column. Ties
// break to the value whose text representation sorts first, keeping
// the result deterministic. The second return is false when the
// column has no present values.
func (c *Column) Mode() (any, bool) {
	counts := make(map[string]int)
	first := make(map[string]any)
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		s := FormatValue(v)
		counts[s]++
		if _, ok := first[s]; !ok {
			first[s] = v
		}
	}
	if len(counts) == 0 {
		return nil, false
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return first[best], true
}
