package domain

import (
	"time"
)

// HeartRateSample represents one heart-rate reading from the export.
// Samples are immutable after extraction; the filter stage discards rather
// than mutates.
type HeartRateSample struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value" validate:"gt=0"` // beats per minute
	Source    string    `json:"source"`
}

// IsLow reports whether the reading is below the given threshold
func (s HeartRateSample) IsLow(threshold float64) bool {
	return s.Value < threshold
}

// WorkoutRecord represents one workout session from the export.
// RawType carries the source vocabulary code; Category is assigned during
// cleaning and is always one of the fixed display vocabulary.
type WorkoutRecord struct {
	RawType     string    `json:"raw_type"`
	Category    string    `json:"category"`
	Timestamp   time.Time `json:"timestamp"` // session start
	DurationMin float64   `json:"duration_minutes" validate:"gte=0"`
	Source      string    `json:"source"`
}

// LowHeartRateEvent represents a sustained low heart-rate episode the watch
// recorded (heart rate below 40 bpm for 10+ minutes).
type LowHeartRateEvent struct {
	Start  time.Time `json:"start_time"`
	End    time.Time `json:"end_time"`
	Source string    `json:"source"`
}

// DurationMin returns the event length in minutes
func (e LowHeartRateEvent) DurationMin() float64 {
	return e.End.Sub(e.Start).Minutes()
}

// HourOfDay returns the start time as a fractional hour, for
// time-of-day pattern charts
func (e LowHeartRateEvent) HourOfDay() float64 {
	return float64(e.Start.Hour()) + float64(e.Start.Minute())/60
}

// SleepSample represents one sleep-analysis interval from the export.
// Source is normalized at extraction ("Apple Watch" or "Eight Sleep");
// intervals from other sources are discarded. Stage is the export value
// with the HKCategoryValueSleepAnalysis prefix stripped (Awake, InBed,
// AsleepCore, AsleepREM, AsleepDeep, AsleepUnspecified).
type SleepSample struct {
	Source string    `json:"source"`
	Start  time.Time `json:"start_time"`
	End    time.Time `json:"end_time"`
	Stage  string    `json:"stage"`
}

// DurationMin returns the interval length in minutes
func (s SleepSample) DurationMin() float64 {
	return s.End.Sub(s.Start).Minutes()
}

// Night returns the calendar date of the night the interval belongs to.
// Intervals starting before 18:00 count toward the previous night.
func (s SleepSample) Night() time.Time {
	day := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), 0, 0, 0, 0, s.Start.Location())
	if s.Start.Hour() < 18 {
		return day.AddDate(0, 0, -1)
	}
	return day
}

// NightlySleep aggregates one source's sleep intervals for one night
type NightlySleep struct {
	Night         time.Time `json:"night"`
	Source        string    `json:"source"`
	TotalSleepMin float64   `json:"total_sleep_min"` // asleep stages only, awake and in-bed excluded
	CoreMin       float64   `json:"core_min"`
	RemMin        float64   `json:"rem_min"`
	DeepMin       float64   `json:"deep_min"`
	AwakeMin      float64   `json:"awake_min"`
	InBedMin      float64   `json:"in_bed_min"`
}

// ExportData holds everything one streaming pass over the export yields
type ExportData struct {
	HeartRate   []HeartRateSample
	Workouts    []WorkoutRecord
	LowHREvents []LowHeartRateEvent
	Sleep       []SleepSample
}
