package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHeartRateSample_IsLow(t *testing.T) {
	sample := HeartRateSample{Value: 39.5}
	assert.True(t, sample.IsLow(40))

	sample.Value = 40
	assert.False(t, sample.IsLow(40))
}

func TestLowHeartRateEvent_DurationMin(t *testing.T) {
	start := time.Date(2025, 8, 1, 2, 15, 0, 0, time.UTC)
	event := LowHeartRateEvent{Start: start, End: start.Add(12*time.Minute + 30*time.Second)}

	assert.InDelta(t, 12.5, event.DurationMin(), 1e-9)
}

func TestLowHeartRateEvent_HourOfDay(t *testing.T) {
	event := LowHeartRateEvent{Start: time.Date(2025, 8, 1, 2, 45, 0, 0, time.UTC)}
	assert.InDelta(t, 2.75, event.HourOfDay(), 1e-9)
}

func TestSleepSample_Night(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  time.Time
	}{
		{
			name:  "late evening belongs to same night",
			start: time.Date(2025, 8, 1, 22, 30, 0, 0, time.UTC),
			want:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "after midnight belongs to previous night",
			start: time.Date(2025, 8, 2, 3, 10, 0, 0, time.UTC),
			want:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "boundary at 18:00 starts a new night",
			start: time.Date(2025, 8, 2, 18, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SleepSample{Start: tt.start}
			assert.Equal(t, tt.want, s.Night())
		})
	}
}
