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
	source := flag.String("source", "", "heart rate source device name (overrides config)")
	cutoff := flag.String("cutoff", "", "recency cutoff date YYYY-MM-DD (overrides config)")
	chartOut := flag.String("chart", "", "output path for the dashboard HTML (defaults to data/reports/health_chart.html)")
	noBrowser := flag.Bool("no-browser", false, "do not open the rendered dashboard in a browser")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if *xmlPath != "" {
		cfg.Input.XMLPath = *xmlPath
	}
	if *source != "" {
		cfg.Filter.HeartRateSource = *source
	}
	if *cutoff != "" {
		cfg.Filter.CutoffDate = *cutoff
	}
	if *chartOut != "" {
		cfg.Output.ChartHTML = *chartOut
	}
	if *noBrowser {
		cfg.Chart.NoBrowser = true
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

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Error("Pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
