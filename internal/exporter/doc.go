// Package exporter writes cleaned health records to report files.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and an optional UTF-8 BOM for Excel compatibility.
//
// RecordExporter: One fixed-schema CSV per record kind (heart rate,
// workouts, low heart-rate events). Files are truncated on open; a write
// failure invalidates the whole file.
//
// WorkbookWriter: The summary workbook with workout and low heart-rate
// aggregates.
//
// Example usage:
//
//	re := exporter.NewRecordExporter()
//	err := re.ExportHeartRate(samples, "data/reports/heart_rate_data.csv")
package exporter
