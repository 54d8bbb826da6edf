package dataprocessing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jeromevaldez/applehealthproject/internal/errors"
)

const sampleExport = `<?xml version="1.0" encoding="UTF-8"?>
<HealthData locale="en_US">
 <ExportDate value="2026-01-16 09:00:00 -0800"/>
 <Me HKCharacteristicTypeIdentifierBiologicalSex="HKBiologicalSexMale"/>
 <Record type="HKQuantityTypeIdentifierHeartRate" sourceName="Jerome&#8217;s Apple Watch" unit="count/min" value="62" startDate="2025-08-01 08:30:00 -0800" endDate="2025-08-01 08:30:00 -0800"/>
 <Record type="HKQuantityTypeIdentifierHeartRate" sourceName="Jerome&#8217;s Apple Watch" unit="count/min" value="38" startDate="2025-08-02 02:10:00 -0800" endDate="2025-08-02 02:10:00 -0800">
  <MetadataEntry key="HKMetadataKeyHeartRateMotionContext" value="0"/>
 </Record>
 <Record type="HKQuantityTypeIdentifierStepCount" sourceName="iPhone" unit="count" value="250" startDate="2025-08-01 09:00:00 -0800" endDate="2025-08-01 09:10:00 -0800"/>
 <Record type="HKCategoryTypeIdentifierLowHeartRateEvent" sourceName="Jerome&#8217;s Apple Watch" startDate="2025-08-02 02:00:00 -0800" endDate="2025-08-02 02:15:00 -0800"/>
 <Record type="HKCategoryTypeIdentifierSleepAnalysis" sourceName="Jerome&#8217;s Apple&#160;Watch" value="HKCategoryValueSleepAnalysisAsleepDeep" startDate="2025-08-01 23:00:00 -0800" endDate="2025-08-01 23:45:00 -0800"/>
 <Record type="HKCategoryTypeIdentifierSleepAnalysis" sourceName="Eight Sleep" value="HKCategoryValueSleepAnalysisAsleepREM" startDate="2025-08-01 23:05:00 -0800" endDate="2025-08-01 23:50:00 -0800"/>
 <Record type="HKCategoryTypeIdentifierSleepAnalysis" sourceName="SomeOtherApp" value="HKCategoryValueSleepAnalysisInBed" startDate="2025-08-01 22:00:00 -0800" endDate="2025-08-02 06:00:00 -0800"/>
 <Record type="HKQuantityTypeIdentifierHeartRate" sourceName="Jerome&#8217;s Apple Watch" unit="count/min" value="not-a-number" startDate="2025-08-03 08:00:00 -0800" endDate="2025-08-03 08:00:00 -0800"/>
 <Workout workoutActivityType="HKWorkoutActivityTypeCycling" duration="45.2" durationUnit="min" sourceName="Strava" startDate="2025-08-01 17:00:00 -0800" endDate="2025-08-01 17:45:00 -0800">
  <WorkoutEvent type="HKWorkoutEventTypeSegment" date="2025-08-01 17:00:00 -0800"/>
 </Workout>
 <Workout workoutActivityType="HKWorkoutActivityTypeRunning" duration="1800" durationUnit="sec" sourceName="Strong" startDate="2025-08-02 07:00:00 -0800" endDate="2025-08-02 07:30:00 -0800"/>
 <Workout workoutActivityType="HKWorkoutActivityTypeWalking" duration="abc" durationUnit="min" sourceName="iPhone" startDate="2025-08-03 07:00:00 -0800" endDate="2025-08-03 07:30:00 -0800"/>
</HealthData>`

func TestParse_RecognizedRecords(t *testing.T) {
	data, err := Parse(strings.NewReader(sampleExport))
	require.NoError(t, err)

	// The unparseable value and the step-count record are skipped
	require.Len(t, data.HeartRate, 2)
	assert.Equal(t, time.Date(2025, 8, 1, 8, 30, 0, 0, time.UTC), data.HeartRate[0].Timestamp)
	assert.Equal(t, 62.0, data.HeartRate[0].Value)
	assert.Equal(t, "Jerome’s Apple Watch", data.HeartRate[0].Source)
	assert.Equal(t, 38.0, data.HeartRate[1].Value)

	// The workout with an unparseable duration is skipped; the seconds
	// duration is converted to minutes
	require.Len(t, data.Workouts, 2)
	assert.Equal(t, "HKWorkoutActivityTypeCycling", data.Workouts[0].RawType)
	assert.Equal(t, 45.2, data.Workouts[0].DurationMin)
	assert.Equal(t, "Strava", data.Workouts[0].Source)
	assert.Equal(t, 30.0, data.Workouts[1].DurationMin)

	require.Len(t, data.LowHREvents, 1)
	assert.InDelta(t, 15.0, data.LowHREvents[0].DurationMin(), 1e-9)

	// The third sleep record's source is neither compared source
	require.Len(t, data.Sleep, 2)
	assert.Equal(t, "Apple Watch", data.Sleep[0].Source)
	assert.Equal(t, "AsleepDeep", data.Sleep[0].Stage)
	assert.Equal(t, "Eight Sleep", data.Sleep[1].Source)
	assert.Equal(t, "AsleepREM", data.Sleep[1].Stage)
}

func TestParse_SortsByTimestamp(t *testing.T) {
	const unordered = `<HealthData>
 <Record type="HKQuantityTypeIdentifierHeartRate" sourceName="w" value="70" startDate="2025-08-05 10:00:00 -0800"/>
 <Record type="HKQuantityTypeIdentifierHeartRate" sourceName="w" value="60" startDate="2025-08-01 10:00:00 -0800"/>
 <Record type="HKQuantityTypeIdentifierHeartRate" sourceName="w" value="65" startDate="2025-08-03 10:00:00 -0800"/>
</HealthData>`

	data, err := Parse(strings.NewReader(unordered))
	require.NoError(t, err)
	require.Len(t, data.HeartRate, 3)
	assert.Equal(t, 60.0, data.HeartRate[0].Value)
	assert.Equal(t, 65.0, data.HeartRate[1].Value)
	assert.Equal(t, 70.0, data.HeartRate[2].Value)
}

func TestParse_EmptyDocument(t *testing.T) {
	data, err := Parse(strings.NewReader(`<HealthData locale="en_US"></HealthData>`))
	require.NoError(t, err)

	assert.Empty(t, data.HeartRate)
	assert.Empty(t, data.Workouts)
	assert.Empty(t, data.LowHREvents)
	assert.Empty(t, data.Sleep)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType apperrors.ErrorType
	}{
		{"malformed xml", `<HealthData><Record type="x"`, apperrors.ErrTypeParsing},
		{"wrong root", `<ExportData></ExportData>`, apperrors.ErrTypeNotFound},
		{"no root at all", ``, apperrors.ErrTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got error: %v", err)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleExport), 0644))

	data, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, data.HeartRate, 2)
	assert.Len(t, data.Workouts, 2)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.xml"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeNotFound))
}

func TestParseExportTime(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"2025-11-16 08:30:00 -0800", time.Date(2025, 11, 16, 8, 30, 0, 0, time.UTC), false},
		{"2025-11-16 08:30:00 +0100", time.Date(2025, 11, 16, 8, 30, 0, 0, time.UTC), false},
		{"2025-11-16 08:30:00", time.Date(2025, 11, 16, 8, 30, 0, 0, time.UTC), false},
		{"", time.Time{}, true},
		{"16/11/2025", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseExportTime(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
