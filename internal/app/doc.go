// Package app wires the health export pipeline together.
//
// An Application loads configuration, resolves paths, and runs the
// parse / clean / export / render stages in order. Each run gets a unique
// run ID that flows through the structured logs, so a failed stage can be
// traced back to its run.
//
// Two entry points exist: Run produces the full dashboard (all CSVs, the
// summary workbook, and the HTML chart) and RunWorkoutExport produces the
// workout CSV alone.
package app
