package config

// Application constants - fixed values for the health export toolkit
const (
	// Application Info
	AppName    = "Apple Health Project"
	AppVersion = "1.0.0"

	// Record type identifiers in the Apple Health export
	HeartRateTypeID     = "HKQuantityTypeIdentifierHeartRate"
	LowHREventTypeID    = "HKCategoryTypeIdentifierLowHeartRateEvent"
	SleepAnalysisTypeID = "HKCategoryTypeIdentifierSleepAnalysis"

	// Export timestamp format: "2025-11-16 08:30:00 -0800".
	// The numeric offset is stripped before parsing; records keep wall-clock time.
	ExportTimeLayout = "2006-01-02 15:04:05"

	// Defaults for the filter/clean stage
	DefaultHeartRateSource = "Jerome's Apple Watch"
	DefaultCutoffDate      = "2025-07-16" // six months before the original reference date
	DefaultOutlierMinutes  = 500.0

	// Heart-rate readings below this are highlighted as low on the chart
	LowHeartRateThreshold = 40.0

	// File paths (relative to executable)
	DefaultDataDir    = "data"
	DefaultExportDir  = "data/export"
	DefaultReportsDir = "data/reports"
	DefaultLogsDir    = "logs"

	// Well-known file names
	ExportFileName      = "export.xml"
	HeartRateCSVName    = "heart_rate_data.csv"
	WorkoutCSVName      = "workout_data.csv"
	LowHREventsCSVName  = "low_hr_events.csv"
	SummaryWorkbookName = "health_summary.xlsx"
	ChartHTMLName       = "health_chart.html"
	ConfigFileName      = "config.yaml"
)

// DefaultPalette maps each workout display category to its chart color.
var DefaultPalette = map[string]string{
	"Cycling":           "#1f77b4",
	"Walking":           "#2ca02c",
	"Strength Training": "#ff7f0e",
	"Running":           "#9467bd",
	"Other":             "#7f7f7f",
}
