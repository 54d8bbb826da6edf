package exporter

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/jeromevaldez/applehealthproject/internal/dataprocessing"
	apperrors "github.com/jeromevaldez/applehealthproject/internal/errors"
)

const (
	workoutSheet = "Workouts"
	lowHRSheet   = "Low Heart Rate"
)

// WorkbookWriter builds the summary workbook from aggregated statistics.
type WorkbookWriter struct{}

// NewWorkbookWriter creates a workbook writer
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// WriteSummary writes workout and low heart-rate aggregates to an xlsx
// workbook at filePath.
func (w *WorkbookWriter) WriteSummary(workouts *dataprocessing.WorkoutSummary, lowHR *dataprocessing.LowHRSummary, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeWorkoutSheet(f, workouts); err != nil {
		return apperrors.NewStorageError("write workout sheet", err)
	}
	if err := w.writeLowHRSheet(f, lowHR); err != nil {
		return apperrors.NewStorageError("write low heart-rate sheet", err)
	}

	// Drop the default sheet so the workbook opens on the workout summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return apperrors.NewStorageError("delete default sheet", err)
	}

	if err := f.SaveAs(filePath); err != nil {
		return apperrors.NewStorageError("save summary workbook", err)
	}

	slog.Info("Exported summary workbook",
		slog.String("file_path", filePath),
		slog.Int("workout_count", workouts.Total),
		slog.Int("low_hr_count", lowHR.Total))
	return nil
}

func (w *WorkbookWriter) writeWorkoutSheet(f *excelize.File, summary *dataprocessing.WorkoutSummary) error {
	if _, err := f.NewSheet(workoutSheet); err != nil {
		return err
	}

	f.SetCellValue(workoutSheet, "A1", "Category")
	f.SetCellValue(workoutSheet, "B1", "Sessions")
	f.SetCellValue(workoutSheet, "C1", "Total Minutes")

	row := 2
	totalMinutes := 0.0
	for _, category := range dataprocessing.Categories() {
		stats, ok := summary.ByCategory[category]
		if !ok {
			continue
		}
		totalMinutes += stats.TotalMinutes
		f.SetCellValue(workoutSheet, fmt.Sprintf("A%d", row), category)
		f.SetCellValue(workoutSheet, fmt.Sprintf("B%d", row), stats.Count)
		f.SetCellValue(workoutSheet, fmt.Sprintf("C%d", row), stats.TotalMinutes)
		row++
	}

	f.SetCellValue(workoutSheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(workoutSheet, fmt.Sprintf("B%d", row), summary.Total)
	f.SetCellValue(workoutSheet, fmt.Sprintf("C%d", row), totalMinutes)

	// Per-source breakdown below the category table.
	row += 2
	f.SetCellValue(workoutSheet, fmt.Sprintf("A%d", row), "Source")
	f.SetCellValue(workoutSheet, fmt.Sprintf("B%d", row), "Sessions")
	f.SetCellValue(workoutSheet, fmt.Sprintf("C%d", row), "Total Minutes")
	row++

	sources := make([]string, 0, len(summary.BySource))
	for source := range summary.BySource {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		stats := summary.BySource[source]
		f.SetCellValue(workoutSheet, fmt.Sprintf("A%d", row), source)
		f.SetCellValue(workoutSheet, fmt.Sprintf("B%d", row), stats.Count)
		f.SetCellValue(workoutSheet, fmt.Sprintf("C%d", row), stats.TotalMinutes)
		row++
	}

	return nil
}

func (w *WorkbookWriter) writeLowHRSheet(f *excelize.File, summary *dataprocessing.LowHRSummary) error {
	if _, err := f.NewSheet(lowHRSheet); err != nil {
		return err
	}

	rows := [][2]interface{}{
		{"Total Events", summary.Total},
		{"Min Duration (min)", summary.MinMinutes},
		{"Max Duration (min)", summary.MaxMinutes},
		{"Avg Duration (min)", summary.AvgMinutes},
		{"Median Duration (min)", summary.MedMinutes},
		{"Night (00-06)", summary.Night},
		{"Morning (06-12)", summary.Morning},
		{"Afternoon (12-18)", summary.Afternoon},
		{"Evening (18-24)", summary.Evening},
	}
	for i, r := range rows {
		f.SetCellValue(lowHRSheet, fmt.Sprintf("A%d", i+1), r[0])
		f.SetCellValue(lowHRSheet, fmt.Sprintf("B%d", i+1), r[1])
	}

	row := len(rows) + 2
	f.SetCellValue(lowHRSheet, fmt.Sprintf("A%d", row), "Month")
	f.SetCellValue(lowHRSheet, fmt.Sprintf("B%d", row), "Events")
	row++

	months := make([]string, 0, len(summary.MonthlyCounts))
	for month := range summary.MonthlyCounts {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		f.SetCellValue(lowHRSheet, fmt.Sprintf("A%d", row), month)
		f.SetCellValue(lowHRSheet, fmt.Sprintf("B%d", row), summary.MonthlyCounts[month])
		row++
	}

	return nil
}
