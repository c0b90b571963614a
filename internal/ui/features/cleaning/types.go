// Package cleaning provides the missing-data handling page.
package cleaning

// CleaningData is the template data for the cleaning page.
type CleaningData struct {
	Columns        []string
	NumericColumns []string
}
