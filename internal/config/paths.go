package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ExportDir     string
	ReportsDir    string
	LogsDir       string

	// Well-known files
	ExportXML       string
	HeartRateCSV    string
	WorkoutCSV      string
	LowHREventsCSV  string
	SummaryWorkbook string
	ChartHTML       string
	ConfigFile      string
}

// GetPaths returns the application paths relative to the executable location.
// All paths are relative to the executable directory, never the current working
// directory, so the tool behaves the same no matter where it is invoked from.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return PathsFrom(filepath.Dir(exe)), nil
}

// PathsFrom builds the path set rooted at the given base directory.
// Directory structure:
//
//	base/
//	  ├── config.yaml
//	  ├── data/
//	  │   ├── export/    (export.xml from Apple Health)
//	  │   └── reports/   (generated CSVs, workbook, chart HTML)
//	  └── logs/
func PathsFrom(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, DefaultDataDir)
	exportDir := filepath.Join(dataDir, "export")
	reportsDir := filepath.Join(dataDir, "reports")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ExportDir:     exportDir,
		ReportsDir:    reportsDir,
		LogsDir:       filepath.Join(baseDir, DefaultLogsDir),

		ExportXML:       filepath.Join(exportDir, ExportFileName),
		HeartRateCSV:    filepath.Join(reportsDir, HeartRateCSVName),
		WorkoutCSV:      filepath.Join(reportsDir, WorkoutCSVName),
		LowHREventsCSV:  filepath.Join(reportsDir, LowHREventsCSVName),
		SummaryWorkbook: filepath.Join(reportsDir, SummaryWorkbookName),
		ChartHTML:       filepath.Join(reportsDir, ChartHTMLName),
		ConfigFile:      filepath.Join(baseDir, ConfigFileName),
	}
}

// GetReportPath returns the full path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetExportPath returns the full path for an export input file
func (p *Paths) GetExportPath(filename string) string {
	return filepath.Join(p.ExportDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates all required directories if they do not exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.ExportDir, p.ReportsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
