package exporter

import (
	"log/slog"

	"github.com/jeromevaldez/applehealthproject/internal/config"
	apperrors "github.com/jeromevaldez/applehealthproject/internal/errors"
	"github.com/jeromevaldez/applehealthproject/pkg/contracts/domain"
)

// Column headers for the fixed record schemas. Readers of the exported
// files depend on these names, so they never change between runs.
var (
	heartRateHeaders  = []string{"timestamp", "value", "source"}
	workoutHeaders    = []string{"timestamp", "duration_minutes", "category", "source"}
	lowHREventHeaders = []string{"start_time", "end_time", "duration_minutes", "source"}
)

// RecordExporter writes cleaned health records to fixed-schema CSV files.
// Files are always overwritten; an empty record slice still produces a
// header-only file so downstream readers see a valid document.
type RecordExporter struct {
	writer *CSVWriter
}

// NewRecordExporter creates a record exporter rooted at the given paths
func NewRecordExporter(paths *config.Paths) *RecordExporter {
	return &RecordExporter{writer: NewCSVWriter(paths)}
}

// ExportHeartRate writes heart rate samples to filePath in timestamp
// order. Heart rate is by far the largest record kind, so rows are
// streamed instead of materialized as one slice of records.
func (e *RecordExporter) ExportHeartRate(samples []domain.HeartRateSample, filePath string) error {
	sw, err := e.writer.CreateStreamWriter(filePath, heartRateHeaders)
	if err != nil {
		return apperrors.NewStorageError("write heart rate CSV", err)
	}

	for _, s := range samples {
		record := []string{
			formatTime(s.Timestamp),
			formatFloat(s.Value),
			s.Source,
		}
		if err := sw.WriteRecord(record); err != nil {
			sw.Close()
			return apperrors.NewStorageError("write heart rate CSV", err)
		}
	}

	if err := sw.Close(); err != nil {
		return apperrors.NewStorageError("write heart rate CSV", err)
	}

	slog.Info("Exported heart rate samples",
		slog.String("file_path", filePath),
		slog.Int("count", len(samples)))
	return nil
}

// ExportWorkouts writes workout records to filePath in timestamp order
func (e *RecordExporter) ExportWorkouts(workouts []domain.WorkoutRecord, filePath string) error {
	records := make([][]string, 0, len(workouts))
	for _, w := range workouts {
		records = append(records, []string{
			formatTime(w.Timestamp),
			formatFloat(w.DurationMin),
			w.Category,
			w.Source,
		})
	}

	if err := e.writer.WriteSimpleCSV(filePath, workoutHeaders, records); err != nil {
		return apperrors.NewStorageError("write workout CSV", err)
	}

	slog.Info("Exported workout records",
		slog.String("file_path", filePath),
		slog.Int("count", len(workouts)))
	return nil
}

// ExportLowHREvents writes low heart-rate events to filePath in start-time order
func (e *RecordExporter) ExportLowHREvents(events []domain.LowHeartRateEvent, filePath string) error {
	records := make([][]string, 0, len(events))
	for _, ev := range events {
		records = append(records, []string{
			formatTime(ev.Start),
			formatTime(ev.End),
			formatFloat(ev.DurationMin()),
			ev.Source,
		})
	}

	if err := e.writer.WriteSimpleCSV(filePath, lowHREventHeaders, records); err != nil {
		return apperrors.NewStorageError("write low heart-rate CSV", err)
	}

	slog.Info("Exported low heart-rate events",
		slog.String("file_path", filePath),
		slog.Int("count", len(events)))
	return nil
}
