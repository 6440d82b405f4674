package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/events"
	"linkpulse/internal/testsupport"
)

func TestComputeHourlyPatterns(t *testing.T) {
	// 2025-06-02 is a Monday (weekday 1), 2025-06-01 a Sunday (weekday 0).
	mondayNine := time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)
	sundayNoon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(mondayNine)),
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(mondayNine.Add(10*time.Minute))),
		testsupport.MakeEvent(events.EventTypeConversion, testsupport.WithTimestamp(sundayNoon)),
	}

	buckets := ComputeHourlyPatterns(evts)
	require.Len(t, buckets, 2)

	assert.Equal(t, 0, buckets[0].DayOfWeek)
	assert.Equal(t, 12, buckets[0].Hour)
	assert.Equal(t, 1, buckets[0].Conversions)

	assert.Equal(t, 1, buckets[1].DayOfWeek)
	assert.Equal(t, 9, buckets[1].Hour)
	assert.Equal(t, 2, buckets[1].Clicks)
}

func TestComputeHourlyPatternsSparse(t *testing.T) {
	// Only observed (day, hour) pairs appear; no zero-filled grid.
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(time.Date(2025, 6, 4, 23, 59, 0, 0, time.UTC))),
	}
	buckets := ComputeHourlyPatterns(evts)
	require.Len(t, buckets, 1)
	assert.Equal(t, 3, buckets[0].DayOfWeek)
	assert.Equal(t, 23, buckets[0].Hour)
}

func TestComputeHourlyPatternsUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	localMidnight := time.Date(2025, 6, 2, 2, 0, 0, 0, loc) // 21:00 UTC the day before
	evts := []events.Event{
		testsupport.MakeEvent(events.EventTypeClick, testsupport.WithTimestamp(localMidnight)),
	}
	buckets := ComputeHourlyPatterns(evts)
	require.Len(t, buckets, 1)
	assert.Equal(t, 0, buckets[0].DayOfWeek) // Sunday in UTC
	assert.Equal(t, 21, buckets[0].Hour)
}
