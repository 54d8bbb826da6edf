package chart

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jeromevaldez/applehealthproject/internal/config"
	"github.com/jeromevaldez/applehealthproject/internal/dataprocessing"
	apperrors "github.com/jeromevaldez/applehealthproject/internal/errors"
	"github.com/jeromevaldez/applehealthproject/pkg/contracts/domain"
)

const (
	dayLayout   = "2006-01-02"
	panelWidth  = "1400px"
	panelHeight = "420px"
)

// Data holds everything the dashboard renders. Slices may be empty; an
// empty panel is still drawn so the page layout is stable.
type Data struct {
	HeartRate   []domain.HeartRateSample
	Workouts    []domain.WorkoutRecord
	LowHREvents []domain.LowHeartRateEvent
	Sleep       []dataprocessing.SleepComparison
	Cutoff      time.Time
}

// Builder renders the health dashboard from cleaned records
type Builder struct {
	palette      map[string]string
	markers      []config.Marker
	lowThreshold float64
}

// NewBuilder creates a dashboard builder from chart configuration
func NewBuilder(cfg config.ChartConfig) *Builder {
	return &Builder{
		palette:      cfg.Palette,
		markers:      cfg.Markers,
		lowThreshold: config.LowHeartRateThreshold,
	}
}

// Render writes the complete dashboard HTML to w
func (b *Builder) Render(data Data, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Health Dashboard"
	page.SetLayout(components.PageFlexLayout)

	page.AddCharts(
		b.heartRatePanel(data.HeartRate),
		b.lowHRPanel(data.LowHREvents),
		b.workoutPanel(data.Workouts, data.Cutoff),
		b.sleepPanel(data.Sleep),
	)

	if err := page.Render(w); err != nil {
		return apperrors.NewStorageError("render dashboard", err)
	}
	return nil
}

// RenderFile renders the dashboard to an HTML file, creating parent
// directories as needed.
func (b *Builder) RenderFile(data Data, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return apperrors.NewStorageError("create chart directory", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return apperrors.NewStorageError("create chart file", err)
	}
	defer file.Close()

	if err := b.Render(data, file); err != nil {
		return err
	}

	slog.Info("Rendered dashboard",
		slog.String("file_path", filePath),
		slog.Int("heart_rate_count", len(data.HeartRate)),
		slog.Int("workout_count", len(data.Workouts)))
	return nil
}

// heartRatePanel plots every retained heart rate sample on a time axis.
// Low readings get their own series so they stand out; the threshold and
// any configured event markers are drawn as dashed lines.
func (b *Builder) heartRatePanel(samples []domain.HeartRateSample) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Heart Rate"}),
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time", Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "BPM"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)

	var normal, low []opts.ScatterData
	for _, s := range samples {
		point := opts.ScatterData{
			Value:      []interface{}{s.Timestamp.Format(config.ExportTimeLayout), s.Value},
			SymbolSize: 4,
		}
		if s.IsLow(b.lowThreshold) {
			point.SymbolSize = 7
			low = append(low, point)
		} else {
			normal = append(normal, point)
		}
	}

	seriesOpts := []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{Color: normalPointColor, Opacity: 0.6}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "Low threshold",
			YAxis: b.lowThreshold,
		}),
		markLineStyle(),
	}
	seriesOpts = append(seriesOpts, b.markerLineOpts()...)

	scatter.AddSeries("Heart Rate", normal, seriesOpts...)
	scatter.AddSeries("Low Reading", low,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: lowPointColor}))
	return scatter
}

// lowHRPanel plots low heart-rate events by time of day, with the symbol
// sized by event duration.
func (b *Builder) lowHRPanel(events []domain.LowHeartRateEvent) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Low Heart Rate Events"}),
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time", Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Hour of Day", Max: 24}),
	)

	points := make([]opts.ScatterData, 0, len(events))
	for _, e := range events {
		size := int(e.DurationMin())
		if size < 6 {
			size = 6
		} else if size > 30 {
			size = 30
		}
		points = append(points, opts.ScatterData{
			Value:      []interface{}{e.Start.Format(config.ExportTimeLayout), e.HourOfDay()},
			SymbolSize: size,
		})
	}

	seriesOpts := []charts.SeriesOpts{
		charts.WithItemStyleOpts(opts.ItemStyle{Color: lowPointColor, Opacity: 0.7}),
		markLineStyle(),
	}
	seriesOpts = append(seriesOpts, b.markerLineOpts()...)

	scatter.AddSeries("Events", points, seriesOpts...)
	return scatter
}

// markerLineOpts returns a vertical markline per configured date marker
func (b *Builder) markerLineOpts() []charts.SeriesOpts {
	seriesOpts := make([]charts.SeriesOpts, 0, len(b.markers))
	for _, m := range b.markers {
		seriesOpts = append(seriesOpts, charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
			Name:  m.Label,
			XAxis: m.Date,
		}))
	}
	return seriesOpts
}

func markLineStyle() charts.SeriesOpts {
	return charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
		Symbol:    []string{"none", "none"},
		LineStyle: &opts.LineStyle{Type: "dashed", Color: markerLineColor},
	})
}

// workoutPanel draws stacked daily workout minutes, one slot per calendar
// day from the cutoff through the last workout. The category axis keeps
// bars visible regardless of how sparse the data is.
func (b *Builder) workoutPanel(workouts []domain.WorkoutRecord, cutoff time.Time) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Daily Workout Minutes"}),
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Minutes"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)

	days, minutesByDay := bucketWorkoutsByDay(workouts, cutoff)
	bar.SetXAxis(days)

	for _, category := range dataprocessing.Categories() {
		perDay, ok := minutesByDay[category]
		if !ok {
			continue
		}
		series := make([]opts.BarData, len(days))
		for i, day := range days {
			if v, ok := perDay[day]; ok {
				series[i] = opts.BarData{Value: v}
			} else {
				series[i] = opts.BarData{Value: nil}
			}
		}
		bar.AddSeries(category, series,
			charts.WithBarChartOpts(opts.BarChart{Stack: "daily", BarCategoryGap: "30%"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorFor(b.palette, category)}))
	}

	return bar
}

// sleepPanel compares nightly sleep between the two sources, one pair of
// lines per stage metric: total asleep, deep, REM, and core minutes. Only
// nights present in both sources appear, so the lines are directly
// comparable.
func (b *Builder) sleepPanel(comparisons []dataprocessing.SleepComparison) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Nightly Sleep Comparison"}),
		charts.WithInitializationOpts(opts.Initialization{Width: panelWidth, Height: panelHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Minutes"}),
	)

	metrics := []struct {
		name  string
		value func(domain.NightlySleep) float64
	}{
		{"Asleep", func(n domain.NightlySleep) float64 { return n.TotalSleepMin }},
		{"Deep", func(n domain.NightlySleep) float64 { return n.DeepMin }},
		{"REM", func(n domain.NightlySleep) float64 { return n.RemMin }},
		{"Core", func(n domain.NightlySleep) float64 { return n.CoreMin }},
	}

	nights := make([]string, 0, len(comparisons))
	for _, c := range comparisons {
		nights = append(nights, c.Night.Format(dayLayout))
	}
	line.SetXAxis(nights)

	for _, m := range metrics {
		apple := make([]opts.LineData, 0, len(comparisons))
		eight := make([]opts.LineData, 0, len(comparisons))
		for _, c := range comparisons {
			apple = append(apple, opts.LineData{Value: m.value(c.Apple)})
			eight = append(eight, opts.LineData{Value: m.value(c.Eight)})
		}
		line.AddSeries("Apple Watch "+m.name, apple)
		line.AddSeries("Eight Sleep "+m.name, eight)
	}
	return line
}

// bucketWorkoutsByDay returns the ordered day axis and per-category daily
// minute totals. The axis runs from the cutoff day through the latest
// workout so gaps between sessions stay visible.
func bucketWorkoutsByDay(workouts []domain.WorkoutRecord, cutoff time.Time) ([]string, map[string]map[string]float64) {
	minutesByDay := make(map[string]map[string]float64)

	last := cutoff
	for _, w := range workouts {
		day := w.Timestamp.Format(dayLayout)
		if minutesByDay[w.Category] == nil {
			minutesByDay[w.Category] = make(map[string]float64)
		}
		minutesByDay[w.Category][day] += w.DurationMin
		if w.Timestamp.After(last) {
			last = w.Timestamp
		}
	}

	if len(workouts) == 0 {
		return nil, minutesByDay
	}

	start := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, cutoff.Location())
	end := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, last.Location())

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dayLayout))
	}
	return days, minutesByDay
}
