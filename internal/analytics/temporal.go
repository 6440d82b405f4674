package analytics

import (
	"fmt"
	"sort"

	"linkpulse/internal/events"
)

// ComputeHourlyPatterns builds the hour-of-day x day-of-week rollup from each
// event's UTC timestamp. Only observed (day, hour) pairs produce a bucket;
// callers needing a dense 24x7 grid zero-fill themselves. Sorted ascending by
// day of week, then hour.
func ComputeHourlyPatterns(evts []events.Event) []HourlyBucket {
	r := groupBy(evts, func(e *events.Event) (string, bool) {
		ts := e.Timestamp.UTC()
		return fmt.Sprintf("%d-%02d", int(ts.Weekday()), ts.Hour()), true
	})

	buckets := make([]HourlyBucket, 0, len(r.keys()))
	for _, key := range r.keys() {
		t := r.get(key)
		var day, hour int
		fmt.Sscanf(key, "%d-%d", &day, &hour)
		buckets = append(buckets, HourlyBucket{
			Hour:        hour,
			DayOfWeek:   day,
			Clicks:      t.clicks,
			Conversions: t.conversions,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].DayOfWeek != buckets[j].DayOfWeek {
			return buckets[i].DayOfWeek < buckets[j].DayOfWeek
		}
		return buckets[i].Hour < buckets[j].Hour
	})
	return buckets
}
