package dataprocessing

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jeromevaldez/applehealthproject/internal/config"
	"github.com/jeromevaldez/applehealthproject/internal/errors"
	"github.com/jeromevaldez/applehealthproject/pkg/contracts/domain"
)

// rootElement is the expected document root of an Apple Health export
const rootElement = "HealthData"

// offsetRe matches the trailing numeric zone offset in export timestamps,
// e.g. "2025-11-16 08:30:00 -0800". The offset is stripped and wall-clock
// time kept, matching how the records were recorded on the device.
var offsetRe = regexp.MustCompile(` [-+]\d{4}$`)

// ParseFile reads an Apple Health export document and extracts heart-rate
// samples, workout records, low heart-rate events, and sleep intervals in a
// single streaming pass. Elements that are not one of the recognized record
// kinds are skipped, never an error.
func ParseFile(path string) (*domain.ExportData, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("export document not found", err).WithContext("path", path)
		}
		return nil, errors.NewStorageError("failed to open export document", err).WithContext("path", path)
	}
	defer f.Close()

	slog.Info("Parsing export document", slog.String("path", path))

	data, err := Parse(f)
	if err != nil {
		return nil, err
	}

	slog.Info("Export document parsed",
		slog.Int("heart_rate_samples", len(data.HeartRate)),
		slog.Int("workouts", len(data.Workouts)),
		slog.Int("low_hr_events", len(data.LowHREvents)),
		slog.Int("sleep_samples", len(data.Sleep)))

	return data, nil
}

// Parse streams the export from r. The decoder never materializes the
// document tree; each element is inspected and released as it is read.
func Parse(r io.Reader) (*domain.ExportData, error) {
	dec := xml.NewDecoder(r)
	data := &domain.ExportData{}

	rootSeen := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParseError("malformed export document", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !rootSeen {
			if se.Name.Local != rootElement {
				return nil, errors.NewNotFoundError(
					fmt.Sprintf("unexpected root element %q, want %q", se.Name.Local, rootElement), nil)
			}
			rootSeen = true
			continue
		}

		switch se.Name.Local {
		case "Record":
			parseRecord(se, data)
		case "Workout":
			parseWorkout(se, data)
		}

		// Consume the element's children so nested entries (metadata,
		// workout events) never accumulate in the decoder.
		if err := dec.Skip(); err != nil {
			return nil, errors.NewParseError("malformed export document", err)
		}
	}

	if !rootSeen {
		return nil, errors.NewNotFoundError("export document has no root element", nil)
	}

	sortByTime(data)
	return data, nil
}

// parseRecord extracts one <Record> element; unparseable or incomplete
// records are skipped
func parseRecord(se xml.StartElement, data *domain.ExportData) {
	switch attr(se, "type") {
	case config.HeartRateTypeID:
		ts, err := parseExportTime(attr(se, "startDate"))
		if err != nil {
			return
		}
		value, err := strconv.ParseFloat(attr(se, "value"), 64)
		if err != nil {
			return
		}
		data.HeartRate = append(data.HeartRate, domain.HeartRateSample{
			Timestamp: ts,
			Value:     value,
			Source:    attr(se, "sourceName"),
		})

	case config.LowHREventTypeID:
		start, err := parseExportTime(attr(se, "startDate"))
		if err != nil {
			return
		}
		end, err := parseExportTime(attr(se, "endDate"))
		if err != nil {
			return
		}
		data.LowHREvents = append(data.LowHREvents, domain.LowHeartRateEvent{
			Start:  start,
			End:    end,
			Source: attr(se, "sourceName"),
		})

	case config.SleepAnalysisTypeID:
		source, ok := normalizeSleepSource(attr(se, "sourceName"))
		if !ok {
			return
		}
		start, err := parseExportTime(attr(se, "startDate"))
		if err != nil {
			return
		}
		end, err := parseExportTime(attr(se, "endDate"))
		if err != nil {
			return
		}
		data.Sleep = append(data.Sleep, domain.SleepSample{
			Source: source,
			Start:  start,
			End:    end,
			Stage:  strings.TrimPrefix(attr(se, "value"), "HKCategoryValueSleepAnalysis"),
		})
	}
}

// parseWorkout extracts one <Workout> element. Durations in non-minute
// units are converted to minutes.
func parseWorkout(se xml.StartElement, data *domain.ExportData) {
	ts, err := parseExportTime(attr(se, "startDate"))
	if err != nil {
		return
	}
	duration, err := strconv.ParseFloat(attr(se, "duration"), 64)
	if err != nil {
		return
	}

	switch attr(se, "durationUnit") {
	case "", "min":
		// already minutes
	case "sec":
		duration /= 60
	case "hr":
		duration *= 60
	default:
		return
	}

	data.Workouts = append(data.Workouts, domain.WorkoutRecord{
		RawType:     attr(se, "workoutActivityType"),
		Timestamp:   ts,
		DurationMin: duration,
		Source:      attr(se, "sourceName"),
	})
}

// normalizeSleepSource maps a raw sourceName to one of the two compared
// sleep sources. The watch source name carries a curly apostrophe and a
// non-breaking space, so a substring check is used instead of equality.
func normalizeSleepSource(raw string) (string, bool) {
	switch {
	case strings.Contains(raw, "Apple") && strings.Contains(raw, "Watch"):
		return "Apple Watch", true
	case strings.Contains(raw, "Eight Sleep"):
		return "Eight Sleep", true
	default:
		return "", false
	}
}

// parseExportTime parses an export timestamp, dropping the zone offset
func parseExportTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	return time.Parse(config.ExportTimeLayout, offsetRe.ReplaceAllString(s, ""))
}

// attr returns the value of a single attribute, or "" if absent
func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func sortByTime(data *domain.ExportData) {
	sort.Slice(data.HeartRate, func(i, j int) bool {
		return data.HeartRate[i].Timestamp.Before(data.HeartRate[j].Timestamp)
	})
	sort.Slice(data.Workouts, func(i, j int) bool {
		return data.Workouts[i].Timestamp.Before(data.Workouts[j].Timestamp)
	})
	sort.Slice(data.LowHREvents, func(i, j int) bool {
		return data.LowHREvents[i].Start.Before(data.LowHREvents[j].Start)
	})
	sort.Slice(data.Sleep, func(i, j int) bool {
		return data.Sleep[i].Start.Before(data.Sleep[j].Start)
	})
}
