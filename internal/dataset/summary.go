package dataset

// summary.go - dataset profiling for the dashboard and preview
// surfaces: per-column missing/distinct counts plus descriptive
// statistics for numeric columns.

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ColumnProfile describes one column for the summary view.
type ColumnProfile struct {
	Name       string
	Type       string
	Missing    int
	MissingPct float64
	Distinct   int
	Sample     string
}

// NumericSummary holds descriptive statistics for a numeric column,
// computed over present values only.
type NumericSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Summary is the profile of a whole dataset.
type Summary struct {
	Rows        int
	Cols        int
	MemoryBytes int64
	Columns     []ColumnProfile
	Numeric     []NumericSummary
}

// Summarize profiles the dataset.
func (d *Dataset) Summarize() *Summary {
	rows := d.Rows()
	s := &Summary{
		Rows:        rows,
		Cols:        d.Cols(),
		MemoryBytes: d.memoryBytes(),
	}

	for _, c := range d.Columns {
		missing := c.MissingCount()
		pct := 0.0
		if rows > 0 {
			pct = round2(float64(missing) / float64(rows) * 100)
		}
		sample := "N/A"
		if rows > 0 {
			sample = c.Text(0)
			if c.Values[0] == nil {
				sample = "N/A"
			}
		}
		s.Columns = append(s.Columns, ColumnProfile{
			Name:       c.Name,
			Type:       c.Type.String(),
			Missing:    missing,
			MissingPct: pct,
			Distinct:   c.DistinctCount(),
			Sample:     sample,
		})

		if c.Type.Numeric() {
			if ns, ok := describeColumn(c); ok {
				s.Numeric = append(s.Numeric, ns)
			}
		}
	}

	return s
}

// describeColumn computes count/mean/std/min/quartiles/max over the
// present values of a numeric column. Returns false when no values
// are present.
func describeColumn(c *Column) (NumericSummary, bool) {
	var xs []float64
	for i := range c.Values {
		if f, ok := c.Float(i); ok {
			xs = append(xs, f)
		}
	}
	if len(xs) == 0 {
		return NumericSummary{}, false
	}
	sort.Float64s(xs)

	std := 0.0
	if len(xs) > 1 {
		std = stat.StdDev(xs, nil)
	}

	return NumericSummary{
		Column: c.Name,
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Std:    std,
		Min:    xs[0],
		Q25:    stat.Quantile(0.25, stat.LinInterp, xs, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, xs, nil),
		Q75:    stat.Quantile(0.75, stat.LinInterp, xs, nil),
		Max:    xs[len(xs)-1],
	}, true
}

// memoryBytes estimates the in-memory footprint of the dataset. Each
// cell carries an interface header on top of its payload.
func (d *Dataset) memoryBytes() int64 {
	const cellOverhead = 16
	var total int64
	for _, c := range d.Columns {
		total += int64(len(c.Name))
		for _, v := range c.Values {
			total += cellOverhead
			switch x := v.(type) {
			case string:
				total += int64(len(x))
			case int64, float64:
				total += 8
			}
		}
	}
	return total
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
