package dataprocessing

import (
	"strings"
	"time"

	"github.com/jeromevaldez/applehealthproject/pkg/contracts/domain"
)

// Display categories for workout records. Every raw activity-type code maps
// to exactly one of these; unknown codes map to CategoryOther.
const (
	CategoryCycling  = "Cycling"
	CategoryWalking  = "Walking"
	CategoryRunning  = "Running"
	CategoryStrength = "Strength Training"
	CategoryOther    = "Other"
)

// categoryTable maps raw HKWorkoutActivityType codes to display categories
var categoryTable = map[string]string{
	"HKWorkoutActivityTypeCycling":                     CategoryCycling,
	"HKWorkoutActivityTypeWalking":                     CategoryWalking,
	"HKWorkoutActivityTypeRunning":                     CategoryRunning,
	"HKWorkoutActivityTypeTraditionalStrengthTraining": CategoryStrength,
	"HKWorkoutActivityTypeFunctionalStrengthTraining":  CategoryStrength,
}

// CategoryFor maps a raw activity-type code to its display category.
// The mapping is total: unknown codes yield CategoryOther.
func CategoryFor(rawType string) string {
	if category, ok := categoryTable[rawType]; ok {
		return category
	}
	return CategoryOther
}

// Categories returns the display vocabulary in chart order
func Categories() []string {
	return []string{CategoryCycling, CategoryWalking, CategoryRunning, CategoryStrength, CategoryOther}
}

// HeartRateFilter configures the heart-rate filter stage
type HeartRateFilter struct {
	Source          string
	CaseInsensitive bool
	Cutoff          time.Time
}

// FilterHeartRate keeps samples whose source equals the configured name and
// whose timestamp is at or after the cutoff (inclusive). Non-positive
// readings are dropped. Pure: the input slice is never modified.
func FilterHeartRate(samples []domain.HeartRateSample, f HeartRateFilter) []domain.HeartRateSample {
	out := make([]domain.HeartRateSample, 0, len(samples))
	for _, s := range samples {
		if s.Value <= 0 {
			continue
		}
		if !sourceMatches(s.Source, f.Source, f.CaseInsensitive) {
			continue
		}
		if s.Timestamp.Before(f.Cutoff) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// CleanWorkouts assigns display categories and drops records before the
// cutoff or with durations above the outlier threshold. A duration exactly
// at the threshold is retained. Pure: the input slice is never modified.
func CleanWorkouts(workouts []domain.WorkoutRecord, cutoff time.Time, maxDurationMin float64) []domain.WorkoutRecord {
	out := make([]domain.WorkoutRecord, 0, len(workouts))
	for _, w := range workouts {
		if w.Timestamp.Before(cutoff) {
			continue
		}
		if w.DurationMin < 0 || w.DurationMin > maxDurationMin {
			continue
		}
		w.Category = CategoryFor(w.RawType)
		out = append(out, w)
	}
	return out
}

// FilterLowHREvents keeps events starting at or after the cutoff
func FilterLowHREvents(events []domain.LowHeartRateEvent, cutoff time.Time) []domain.LowHeartRateEvent {
	out := make([]domain.LowHeartRateEvent, 0, len(events))
	for _, e := range events {
		if e.Start.Before(cutoff) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSleep keeps sleep intervals starting at or after the cutoff,
// dropping exact duplicates first. Eight Sleep re-exports identical
// intervals with different creation dates, so uniqueness is judged on
// (source, start, end, stage).
func FilterSleep(samples []domain.SleepSample, cutoff time.Time) []domain.SleepSample {
	type key struct {
		source string
		start  time.Time
		end    time.Time
		stage  string
	}
	seen := make(map[key]struct{}, len(samples))

	out := make([]domain.SleepSample, 0, len(samples))
	for _, s := range samples {
		if s.Start.Before(cutoff) {
			continue
		}
		k := key{s.Source, s.Start, s.End, s.Stage}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sourceMatches(got, want string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(got, want)
	}
	return got == want
}
