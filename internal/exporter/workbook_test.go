package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jeromevaldez/applehealthproject/internal/dataprocessing"
)

func TestWriteSummary(t *testing.T) {
	workouts := &dataprocessing.WorkoutSummary{
		Total: 3,
		ByCategory: map[string]dataprocessing.CategoryStats{
			"Cycling": {Count: 2, TotalMinutes: 90},
			"Walking": {Count: 1, TotalMinutes: 30},
		},
		BySource: map[string]dataprocessing.CategoryStats{
			"Jerome's Apple Watch": {Count: 3, TotalMinutes: 120},
		},
	}
	lowHR := &dataprocessing.LowHRSummary{
		Total:      2,
		MinMinutes: 5,
		MaxMinutes: 15,
		AvgMinutes: 10,
		MedMinutes: 10,
		Night:      2,
		MonthlyCounts: map[string]int{
			"2025-08": 2,
		},
	}

	path := filepath.Join(t.TempDir(), "summary.xlsx")
	require.NoError(t, NewWorkbookWriter().WriteSummary(workouts, lowHR, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, workoutSheet)
	assert.Contains(t, sheets, lowHRSheet)
	assert.NotContains(t, sheets, "Sheet1")

	cell, err := f.GetCellValue(workoutSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Cycling", cell)

	cell, err = f.GetCellValue(workoutSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2", cell)

	cell, err = f.GetCellValue(lowHRSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", cell)
}

func TestWriteSummaryEmpty(t *testing.T) {
	workouts := &dataprocessing.WorkoutSummary{
		ByCategory: map[string]dataprocessing.CategoryStats{},
		BySource:   map[string]dataprocessing.CategoryStats{},
	}
	lowHR := &dataprocessing.LowHRSummary{
		MonthlyCounts: map[string]int{},
	}

	path := filepath.Join(t.TempDir(), "summary.xlsx")
	require.NoError(t, NewWorkbookWriter().WriteSummary(workouts, lowHR, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue(workoutSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total", cell)
}
