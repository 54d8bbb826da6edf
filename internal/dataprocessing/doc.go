// Package dataprocessing provides the ETL stages for the Apple Health export:
// extraction, filtering/cleaning, and summarization.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Parser: streams the export XML and extracts typed records
// 2. Cleaner: pure sequence-in/sequence-out filter and label-cleaning functions
// 3. Summarizer: workout/low-HR summaries and nightly sleep aggregation
//
// # Usage
//
// Basic extraction example:
//
//	data, err := dataprocessing.ParseFile("export.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Cleaning:
//
//	hr := dataprocessing.FilterHeartRate(data.HeartRate, opts)
//	workouts := dataprocessing.CleanWorkouts(data.Workouts, cutoff, 500)
//
// # Data Flow
//
//	export.xml → Parser → ExportData → Cleaner → cleaned records → {Exporter, Chart}
//
// # Memory
//
// The parser uses a streaming token decoder; peak memory is bounded by the
// number of recognized records, never by the document size. Exports routinely
// reach hundreds of megabytes and hundreds of thousands of elements.
package dataprocessing
