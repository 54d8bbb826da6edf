package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeromevaldez/applehealthproject/internal/config"
	"github.com/jeromevaldez/applehealthproject/pkg/contracts/domain"
)

func testRecordExporter(t *testing.T) (*RecordExporter, *config.Paths) {
	t.Helper()
	paths := config.PathsFrom(t.TempDir())
	return NewRecordExporter(paths), paths
}

func TestExportHeartRate(t *testing.T) {
	exporter, paths := testRecordExporter(t)

	samples := []domain.HeartRateSample{
		{Timestamp: time.Date(2025, 8, 1, 7, 30, 0, 0, time.UTC), Value: 62, Source: "Jerome's Apple Watch"},
		{Timestamp: time.Date(2025, 8, 1, 7, 31, 0, 0, time.UTC), Value: 64.5, Source: "Jerome's Apple Watch"},
	}

	require.NoError(t, exporter.ExportHeartRate(samples, config.HeartRateCSVName))

	rows := readCSV(t, paths.GetReportPath(config.HeartRateCSVName))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"timestamp", "value", "source"}, rows[0])
	assert.Equal(t, []string{"2025-08-01 07:30:00", "62.00", "Jerome's Apple Watch"}, rows[1])
	assert.Equal(t, []string{"2025-08-01 07:31:00", "64.50", "Jerome's Apple Watch"}, rows[2])
}

func TestExportHeartRateEmpty(t *testing.T) {
	exporter, paths := testRecordExporter(t)

	require.NoError(t, exporter.ExportHeartRate(nil, config.HeartRateCSVName))

	// Header-only file, still a valid document.
	rows := readCSV(t, paths.GetReportPath(config.HeartRateCSVName))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"timestamp", "value", "source"}, rows[0])
}

func TestExportHeartRateLargeInput(t *testing.T) {
	exporter, paths := testRecordExporter(t)

	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	samples := make([]domain.HeartRateSample, 5000)
	for i := range samples {
		samples[i] = domain.HeartRateSample{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Value:     60 + float64(i%40),
			Source:    "Jerome's Apple Watch",
		}
	}

	require.NoError(t, exporter.ExportHeartRate(samples, config.HeartRateCSVName))

	rows := readCSV(t, paths.GetReportPath(config.HeartRateCSVName))
	require.Len(t, rows, 5001)
	assert.Equal(t, "2025-08-01 00:00:00", rows[1][0])
	assert.Equal(t, "60.00", rows[1][1])
}

func TestExportWorkouts(t *testing.T) {
	exporter, paths := testRecordExporter(t)

	workouts := []domain.WorkoutRecord{
		{
			RawType:     "HKWorkoutActivityTypeCycling",
			Category:    "Cycling",
			Timestamp:   time.Date(2025, 8, 2, 18, 0, 0, 0, time.UTC),
			DurationMin: 45.25,
			Source:      "Jerome's Apple Watch",
		},
	}

	require.NoError(t, exporter.ExportWorkouts(workouts, config.WorkoutCSVName))

	rows := readCSV(t, paths.GetReportPath(config.WorkoutCSVName))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"timestamp", "duration_minutes", "category", "source"}, rows[0])
	assert.Equal(t, []string{"2025-08-02 18:00:00", "45.25", "Cycling", "Jerome's Apple Watch"}, rows[1])
}

func TestExportWorkoutsEmpty(t *testing.T) {
	exporter, paths := testRecordExporter(t)

	require.NoError(t, exporter.ExportWorkouts(nil, config.WorkoutCSVName))

	rows := readCSV(t, paths.GetReportPath(config.WorkoutCSVName))
	require.Len(t, rows, 1)
}

func TestExportLowHREvents(t *testing.T) {
	exporter, paths := testRecordExporter(t)

	start := time.Date(2025, 8, 3, 2, 15, 0, 0, time.UTC)
	events := []domain.LowHeartRateEvent{
		{Start: start, End: start.Add(12 * time.Minute), Source: "Jerome's Apple Watch"},
	}

	require.NoError(t, exporter.ExportLowHREvents(events, config.LowHREventsCSVName))

	rows := readCSV(t, paths.GetReportPath(config.LowHREventsCSVName))
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"start_time", "end_time", "duration_minutes", "source"}, rows[0])
	assert.Equal(t, []string{"2025-08-03 02:15:00", "2025-08-03 02:27:00", "12.00", "Jerome's Apple Watch"}, rows[1])
}

func TestExportToAbsolutePath(t *testing.T) {
	exporter, _ := testRecordExporter(t)

	dir := t.TempDir()
	target := dir + "/hr.csv"
	require.NoError(t, exporter.ExportHeartRate(nil, target))

	rows := readCSV(t, target)
	require.Len(t, rows, 1)
}
