package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// WriteCSV serializes the dataset as comma-separated text with a
// header row, no row index column, in the current column order.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(d.ColumnNames()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	rows := d.Rows()
	record := make([]string, len(d.Columns))
	for i := 0; i < rows; i++ {
		for j, c := range d.Columns {
			record[j] = c.Text(i)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the dataset to the file at path, replacing any
// existing content.
func (d *Dataset) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save csv: %w", err)
	}
	if err := d.WriteCSV(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("save csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save csv: %w", err)
	}
	return nil
}
