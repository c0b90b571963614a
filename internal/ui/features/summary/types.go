// Package summary provides the dashboard: dataset profile, preview
// and operation history.
package summary

import (
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/dataset"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/history"
)

// DashboardData is the template data for the dashboard page.
type DashboardData struct {
	Summary *dataset.Summary
	Headers []string
	Preview [][]string
	History []history.Operation
}
