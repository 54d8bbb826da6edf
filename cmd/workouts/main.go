package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jeromevaldez/applehealthproject/internal/app"
	"github.com/jeromevaldez/applehealthproject/internal/config"
	"github.com/jeromevaldez/applehealthproject/internal/infrastructure"
)

func main() {
	xmlPath := flag.String("xml", "", "path to the Apple Health export.xml (defaults to data/export/export.xml relative to executable)")
	cutoff := flag.String("cutoff", "", "recency cutoff date YYYY-MM-DD (overrides config)")
	maxDuration := flag.Float64("max-duration", 0, "drop workouts longer than this many minutes (overrides config)")
	out := flag.String("out", "", "output path for the workout CSV (defaults to data/reports/workout_data.csv)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if *xmlPath != "" {
		cfg.Input.XMLPath = *xmlPath
	}
	if *cutoff != "" {
		cfg.Filter.CutoffDate = *cutoff
	}
	if *maxDuration > 0 {
		cfg.Filter.OutlierMinutes = *maxDuration
	}
	if *out != "" {
		cfg.Output.WorkoutCSV = *out
	}

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	application, err := app.NewWithConfig(cfg, paths)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if err := application.RunWorkoutExport(context.Background()); err != nil {
		application.Logger.Error("Workout export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
