// Package home provides the upload page and dataset loading handlers.
package home

// HomeData is the template data for the upload page.
type HomeData struct {
	// Samples lists the CSV files already present in the data
	// directory, loadable without a fresh upload.
	Samples []string
}
