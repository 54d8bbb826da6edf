package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/jeromevaldez/applehealthproject/internal/chart"
	"github.com/jeromevaldez/applehealthproject/internal/config"
	"github.com/jeromevaldez/applehealthproject/internal/dataprocessing"
	apperrors "github.com/jeromevaldez/applehealthproject/internal/errors"
	"github.com/jeromevaldez/applehealthproject/internal/exporter"
	"github.com/jeromevaldez/applehealthproject/internal/infrastructure"
	"github.com/jeromevaldez/applehealthproject/pkg/contracts/domain"
)

// Application is the main pipeline container
type Application struct {
	Config *config.Config
	Paths  *config.Paths
	Logger *slog.Logger

	records *exporter.RecordExporter
	books   *exporter.WorkbookWriter
	charts  *chart.Builder
}

// NewApplication loads configuration and builds the pipeline
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}

	return NewWithConfig(cfg, paths)
}

// NewWithConfig builds the pipeline from an already-loaded configuration.
// Output paths left empty in cfg are resolved against paths.
func NewWithConfig(cfg *config.Config, paths *config.Paths) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}
	cfg.ResolveOutputs(paths)

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("export_xml", cfg.Input.XMLPath))

	return &Application{
		Config:  cfg,
		Paths:   paths,
		Logger:  logger,
		records: exporter.NewRecordExporter(paths),
		books:   exporter.NewWorkbookWriter(),
		charts:  chart.NewBuilder(cfg.Chart),
	}, nil
}

// Run executes the full pipeline: parse, clean, export all report files,
// and render the dashboard. An export with no matching records is not an
// error; the run still produces header-only CSVs and an empty chart.
func (a *Application) Run(ctx context.Context) error {
	ctx = infrastructure.WithRunID(ctx, uuid.New().String())
	logger := a.Logger

	data, err := a.parseExport(ctx)
	if err != nil {
		return err
	}

	cutoff, err := a.Config.Cutoff()
	if err != nil {
		return apperrors.NewConfigError("parse cutoff date", err)
	}

	heartRate := dataprocessing.FilterHeartRate(data.HeartRate, dataprocessing.HeartRateFilter{
		Source:          a.Config.Filter.HeartRateSource,
		CaseInsensitive: a.Config.Filter.CaseInsensitive,
		Cutoff:          cutoff,
	})
	workouts := dataprocessing.CleanWorkouts(data.Workouts, cutoff, a.Config.Filter.OutlierMinutes)
	lowHR := dataprocessing.FilterLowHREvents(data.LowHREvents, cutoff)
	sleep := dataprocessing.FilterSleep(data.Sleep, cutoff)

	logger.InfoContext(ctx, "Cleaned export records",
		slog.Int("heart_rate", len(heartRate)),
		slog.Int("workouts", len(workouts)),
		slog.Int("low_hr_events", len(lowHR)),
		slog.Int("sleep_samples", len(sleep)))

	if len(heartRate) == 0 && len(workouts) == 0 {
		noData := apperrors.NewNoDataError("no records matched the configured filters").
			WithContext("source", a.Config.Filter.HeartRateSource).
			WithContext("cutoff", a.Config.Filter.CutoffDate)
		logger.WarnContext(ctx, noData.Error(),
			slog.String("source", a.Config.Filter.HeartRateSource),
			slog.String("cutoff", a.Config.Filter.CutoffDate))
	}

	if err := a.records.ExportHeartRate(heartRate, a.Config.Output.HeartRateCSV); err != nil {
		return err
	}
	if err := a.records.ExportWorkouts(workouts, a.Config.Output.WorkoutCSV); err != nil {
		return err
	}
	if err := a.records.ExportLowHREvents(lowHR, a.Config.Output.LowHREventsCSV); err != nil {
		return err
	}

	workoutSummary := dataprocessing.SummarizeWorkouts(workouts)
	lowHRSummary := dataprocessing.SummarizeLowHREvents(lowHR)
	if err := a.books.WriteSummary(&workoutSummary, &lowHRSummary, a.Config.Output.SummaryWorkbook); err != nil {
		return err
	}

	nights := dataprocessing.AggregateSleepNights(sleep)
	comparisons := dataprocessing.CompareSleepSources(nights)

	chartData := chart.Data{
		HeartRate:   heartRate,
		Workouts:    workouts,
		LowHREvents: lowHR,
		Sleep:       comparisons,
		Cutoff:      cutoff,
	}
	if err := a.charts.RenderFile(chartData, a.Config.Output.ChartHTML); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Pipeline complete",
		slog.String("chart", a.Config.Output.ChartHTML))

	if !a.Config.Chart.NoBrowser {
		if err := openBrowser(a.Config.Output.ChartHTML); err != nil {
			// The report files are already on disk; tell the user where.
			logger.WarnContext(ctx, "Failed to open browser",
				slog.String("error", err.Error()),
				slog.String("chart", a.Config.Output.ChartHTML))
			fmt.Printf("Dashboard written to %s\n", a.Config.Output.ChartHTML)
		}
	}

	return nil
}

// RunWorkoutExport executes the workout-only pipeline: parse, clean
// workouts, write the workout CSV.
func (a *Application) RunWorkoutExport(ctx context.Context) error {
	ctx = infrastructure.WithRunID(ctx, uuid.New().String())
	logger := a.Logger

	data, err := a.parseExport(ctx)
	if err != nil {
		return err
	}

	cutoff, err := a.Config.Cutoff()
	if err != nil {
		return apperrors.NewConfigError("parse cutoff date", err)
	}

	workouts := dataprocessing.CleanWorkouts(data.Workouts, cutoff, a.Config.Filter.OutlierMinutes)
	if len(workouts) == 0 {
		logger.WarnContext(ctx, "No workouts matched the configured filters",
			slog.String("cutoff", a.Config.Filter.CutoffDate))
	}

	if err := a.records.ExportWorkouts(workouts, a.Config.Output.WorkoutCSV); err != nil {
		return err
	}

	a.logWorkoutSummary(ctx, dataprocessing.SummarizeWorkouts(workouts))

	logger.InfoContext(ctx, "Workout export complete",
		slog.Int("count", len(workouts)),
		slog.String("file", a.Config.Output.WorkoutCSV))
	return nil
}

// logWorkoutSummary reports per-category and per-source workout totals
func (a *Application) logWorkoutSummary(ctx context.Context, summary dataprocessing.WorkoutSummary) {
	for _, category := range dataprocessing.Categories() {
		stats, ok := summary.ByCategory[category]
		if !ok {
			continue
		}
		a.Logger.InfoContext(ctx, "Workout category summary",
			slog.String("category", category),
			slog.Int("sessions", stats.Count),
			slog.Float64("total_minutes", stats.TotalMinutes))
	}

	sources := make([]string, 0, len(summary.BySource))
	for source := range summary.BySource {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		stats := summary.BySource[source]
		a.Logger.InfoContext(ctx, "Workout source summary",
			slog.String("source", source),
			slog.Int("sessions", stats.Count),
			slog.Float64("total_minutes", stats.TotalMinutes))
	}
}

func (a *Application) parseExport(ctx context.Context) (*domain.ExportData, error) {
	logger := infrastructure.LoggerFromContext(ctx)
	logger.Info("Parsing export document",
		slog.String("path", a.Config.Input.XMLPath))

	data, err := dataprocessing.ParseFile(a.Config.Input.XMLPath)
	if err != nil {
		return nil, err
	}

	logger.Info("Parsed export document",
		slog.Int("heart_rate", len(data.HeartRate)),
		slog.Int("workouts", len(data.Workouts)),
		slog.Int("low_hr_events", len(data.LowHREvents)),
		slog.Int("sleep_samples", len(data.Sleep)))
	return data, nil
}
