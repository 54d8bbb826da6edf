package dataprocessing

import (
	"sort"
	"time"

	"github.com/jeromevaldez/applehealthproject/pkg/contracts/domain"
)

// CategoryStats aggregates workout records sharing one key (category or source)
type CategoryStats struct {
	Count        int
	TotalMinutes float64
}

// WorkoutSummary holds per-category and per-source workout aggregates
type WorkoutSummary struct {
	Total      int
	ByCategory map[string]CategoryStats
	BySource   map[string]CategoryStats
}

// SummarizeWorkouts aggregates cleaned workout records
func SummarizeWorkouts(workouts []domain.WorkoutRecord) WorkoutSummary {
	summary := WorkoutSummary{
		Total:      len(workouts),
		ByCategory: make(map[string]CategoryStats),
		BySource:   make(map[string]CategoryStats),
	}

	for _, w := range workouts {
		c := summary.ByCategory[w.Category]
		c.Count++
		c.TotalMinutes += w.DurationMin
		summary.ByCategory[w.Category] = c

		s := summary.BySource[w.Source]
		s.Count++
		s.TotalMinutes += w.DurationMin
		summary.BySource[w.Source] = s
	}

	return summary
}

// LowHRSummary holds duration statistics and distribution of low
// heart-rate events
type LowHRSummary struct {
	Total      int
	MinMinutes float64
	MaxMinutes float64
	AvgMinutes float64
	MedMinutes float64

	// Time-of-day distribution: night 00-06, morning 06-12,
	// afternoon 12-18, evening 18-24
	Night     int
	Morning   int
	Afternoon int
	Evening   int

	// MonthlyCounts keyed by "2006-01"
	MonthlyCounts map[string]int
}

// SummarizeLowHREvents computes duration statistics and the time-of-day and
// monthly distributions of low heart-rate events
func SummarizeLowHREvents(events []domain.LowHeartRateEvent) LowHRSummary {
	summary := LowHRSummary{
		Total:         len(events),
		MonthlyCounts: make(map[string]int),
	}
	if len(events) == 0 {
		return summary
	}

	durations := make([]float64, 0, len(events))
	var total float64
	for _, e := range events {
		d := e.DurationMin()
		durations = append(durations, d)
		total += d

		switch hour := e.Start.Hour(); {
		case hour < 6:
			summary.Night++
		case hour < 12:
			summary.Morning++
		case hour < 18:
			summary.Afternoon++
		default:
			summary.Evening++
		}

		summary.MonthlyCounts[e.Start.Format("2006-01")]++
	}

	sort.Float64s(durations)
	summary.MinMinutes = durations[0]
	summary.MaxMinutes = durations[len(durations)-1]
	summary.AvgMinutes = total / float64(len(durations))
	summary.MedMinutes = median(durations)

	return summary
}

// AggregateSleepNights sums stage minutes per (night, source). Results are
// ordered by night, then source.
func AggregateSleepNights(samples []domain.SleepSample) []domain.NightlySleep {
	type key struct {
		night  time.Time
		source string
	}
	byNight := make(map[key]*domain.NightlySleep)

	for _, s := range samples {
		k := key{s.Night(), s.Source}
		n, ok := byNight[k]
		if !ok {
			n = &domain.NightlySleep{Night: k.night, Source: k.source}
			byNight[k] = n
		}

		d := s.DurationMin()
		switch s.Stage {
		case "AsleepCore":
			n.CoreMin += d
			n.TotalSleepMin += d
		case "AsleepREM":
			n.RemMin += d
			n.TotalSleepMin += d
		case "AsleepDeep":
			n.DeepMin += d
			n.TotalSleepMin += d
		case "AsleepUnspecified":
			n.TotalSleepMin += d
		case "Awake":
			n.AwakeMin += d
		case "InBed":
			n.InBedMin += d
		}
	}

	nights := make([]domain.NightlySleep, 0, len(byNight))
	for _, n := range byNight {
		nights = append(nights, *n)
	}
	sort.Slice(nights, func(i, j int) bool {
		if !nights[i].Night.Equal(nights[j].Night) {
			return nights[i].Night.Before(nights[j].Night)
		}
		return nights[i].Source < nights[j].Source
	})
	return nights
}

// SleepComparison pairs one night's aggregates from both sources
type SleepComparison struct {
	Night time.Time
	Apple domain.NightlySleep
	Eight domain.NightlySleep
}

// CompareSleepSources pairs nights that have aggregates from both the watch
// and the mattress sensor; nights covered by only one source are dropped.
func CompareSleepSources(nights []domain.NightlySleep) []SleepComparison {
	apple := make(map[time.Time]domain.NightlySleep)
	eight := make(map[time.Time]domain.NightlySleep)
	for _, n := range nights {
		switch n.Source {
		case "Apple Watch":
			apple[n.Night] = n
		case "Eight Sleep":
			eight[n.Night] = n
		}
	}

	comparisons := make([]SleepComparison, 0, len(apple))
	for night, a := range apple {
		e, ok := eight[night]
		if !ok {
			continue
		}
		comparisons = append(comparisons, SleepComparison{Night: night, Apple: a, Eight: e})
	}
	sort.Slice(comparisons, func(i, j int) bool {
		return comparisons[i].Night.Before(comparisons[j].Night)
	})
	return comparisons
}

// median of an already sorted slice
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
