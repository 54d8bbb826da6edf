// Package config provides centralized configuration management for the
// health export toolkit. It handles loading configuration from multiple
// sources, validation, and a single source of truth for file paths.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. config.yaml next to the executable
//  3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern HEALTH_* for namespacing:
//
//	HEALTH_INPUT_XML_PATH=/data/export.xml
//	HEALTH_FILTER_HEART_RATE_SOURCE="Jerome's Apple Watch"
//	HEALTH_FILTER_CUTOFF_DATE=2025-07-16
//	HEALTH_LOGGING_LEVEL=debug
//
// # Path Management
//
// The Paths type resolves all file system paths relative to the executable
// location:
//
//	paths, err := config.GetPaths()
//	csvPath := paths.GetReportPath("workout_data.csv")
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
