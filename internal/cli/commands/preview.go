package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/dataset"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "preview <file.csv>",
		Short: "Profile a CSV file in the terminal",
		Long: `Load a CSV file and print its first rows and a per-column profile
without starting the web UI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], rows)
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of rows to show")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, rows int) error {
	ds, err := dataset.LoadCSV(cmd.Context(), path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %d rows, %d columns\n\n", path, ds.Rows(), ds.Cols())

	if rows > ds.Rows() {
		rows = ds.Rows()
	}
	renderRows(w, ds, rows)
	fmt.Fprintln(w)
	renderProfile(w, ds.Summarize())

	return nil
}

func renderRows(w io.Writer, ds *dataset.Dataset, rows int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, ds.Cols())
	for i, name := range ds.ColumnNames() {
		header[i] = name
	}
	t.AppendHeader(header)

	for i := 0; i < rows; i++ {
		row := make(table.Row, ds.Cols())
		for j, c := range ds.Columns {
			row[j] = c.Text(i)
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderProfile(w io.Writer, sum *dataset.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Type", "Missing", "Missing %", "Distinct", "Sample"})

	for _, c := range sum.Columns {
		t.AppendRow(table.Row{c.Name, c.Type, c.Missing, fmt.Sprintf("%.2f", c.MissingPct), c.Distinct, c.Sample})
	}
	t.Render()
}
