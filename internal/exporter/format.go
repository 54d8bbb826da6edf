package exporter

import (
	"fmt"
	"time"

	"github.com/jeromevaldez/applehealthproject/internal/config"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	// Always format with exactly 2 decimal places for consistency
	// This ensures values like 61.4 appear as 61.40 in CSV
	return fmt.Sprintf("%.2f", f)
}

// formatTime formats a timestamp in the wall-clock layout used by all
// exported files.
func formatTime(t time.Time) string {
	return t.Format(config.ExportTimeLayout)
}
